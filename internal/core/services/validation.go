package services

import (
	"context"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("account_type", func(fl validator.FieldLevel) bool {
		return domain.AccountType(fl.Field().Uint()).Valid()
	})
	return v
}

// validateInput rejects malformed input before anything reaches the engine.
func validateInput(ctx context.Context, op string, input any) error {
	if err := validate.StructCtx(ctx, input); err != nil {
		return apperrors.NewProgrammingError(op, err)
	}
	return nil
}
