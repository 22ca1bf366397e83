package investment

import (
	"context"

	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/adapter"
	"github.com/finwise/backend/internal/domain/entity"
	domainerror "github.com/finwise/backend/internal/domain/error"
)

// WithdrawFromInvestmentInput represents the input for a withdrawal.
type WithdrawFromInvestmentInput struct {
	UserID       uuid.UUID
	InvestmentID uuid.UUID
	Amount       *float64
}

// WithdrawFromInvestmentOutput carries the updated investment.
type WithdrawFromInvestmentOutput struct {
	Investment *entity.InvestmentWithType
}

// WithdrawFromInvestmentUseCase removes funds from an investment's current
// value. The decrement is guarded in the database so the balance can never
// go negative, even under concurrent withdrawals.
type WithdrawFromInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewWithdrawFromInvestmentUseCase creates a new WithdrawFromInvestmentUseCase instance.
func NewWithdrawFromInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *WithdrawFromInvestmentUseCase {
	return &WithdrawFromInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute applies the withdrawal.
func (uc *WithdrawFromInvestmentUseCase) Execute(ctx context.Context, input WithdrawFromInvestmentInput) (*WithdrawFromInvestmentOutput, error) {
	if input.Amount == nil {
		return nil, domainerror.NewValidationError("amount", "Amount is required")
	}
	if *input.Amount <= 0 {
		return nil, domainerror.NewValidationError("amount", "Withdrawal amount must be a positive number")
	}

	investment, err := uc.investmentRepo.SubtractFromCurrentValue(ctx, input.InvestmentID, input.UserID, *input.Amount)
	if err != nil {
		return nil, err
	}
	return &WithdrawFromInvestmentOutput{Investment: investment}, nil
}
