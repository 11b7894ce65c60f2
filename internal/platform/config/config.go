package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Ledger engine modes.
const (
	LedgerModeTigerBeetle = "tigerbeetle"
	LedgerModeMock        = "mock"
	LedgerModeMemory      = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	JWTSecret    string
	RateLimit    string

	// Ledger engine
	LedgerEnabled          bool
	LedgerMode             string
	LedgerClusterID        uint64
	LedgerReplicaAddresses []string

	// HubID owns the hub reconciliation and multilateral settlement accounts.
	HubID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RATE_LIMIT", "600-M")
	v.SetDefault("LEDGER_ENABLED", true)
	v.SetDefault("LEDGER_MODE", LedgerModeTigerBeetle)
	v.SetDefault("LEDGER_CLUSTER_ID", "0")
	v.SetDefault("LEDGER_REPLICA_ADDRESSES", "3000")
	v.SetDefault("HUB_ID", "1")
	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		JWTSecret:     v.GetString("JWT_SECRET"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		LedgerEnabled: v.GetBool("LEDGER_ENABLED"),
		LedgerMode:    strings.ToLower(strings.TrimSpace(v.GetString("LEDGER_MODE"))),
		HubID:         strings.TrimSpace(v.GetString("HUB_ID")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	switch cfg.LedgerMode {
	case LedgerModeTigerBeetle, LedgerModeMock, LedgerModeMemory:
	default:
		return nil, fmt.Errorf("invalid LEDGER_MODE %q: want %s, %s or %s", cfg.LedgerMode, LedgerModeTigerBeetle, LedgerModeMock, LedgerModeMemory)
	}

	clusterID, err := strconv.ParseUint(strings.TrimSpace(v.GetString("LEDGER_CLUSTER_ID")), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_CLUSTER_ID: %w", err)
	}
	cfg.LedgerClusterID = clusterID

	for _, addr := range strings.Split(v.GetString("LEDGER_REPLICA_ADDRESSES"), ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			cfg.LedgerReplicaAddresses = append(cfg.LedgerReplicaAddresses, addr)
		}
	}
	if cfg.LedgerMode == LedgerModeTigerBeetle && len(cfg.LedgerReplicaAddresses) == 0 {
		return nil, fmt.Errorf("LEDGER_REPLICA_ADDRESSES must list at least one replica")
	}

	if _, err := strconv.ParseUint(cfg.HubID, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid HUB_ID %q: must be numeric", cfg.HubID)
	}

	if !cfg.LedgerEnabled {
		log.Println("Warning: LEDGER_ENABLED is false. Every ledger operation will fail with a configuration error.")
	}

	return cfg, nil
}
