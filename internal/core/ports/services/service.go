package services

// ServiceContainer holds instances of all the application services.
// It is built once in main and handed to the handlers.
type ServiceContainer struct {
	Gateway      LedgerGatewaySvc
	Provisioner  AccountProvisionerSvc
	Orchestrator TransferOrchestratorSvc
}

// Shutdown releases engine resources held by the container.
func (c *ServiceContainer) Shutdown() {
	if c != nil && c.Gateway != nil {
		c.Gateway.Shutdown()
	}
}
