package dto

import "github.com/finwise/backend/internal/domain/entity"

// CreateInvestmentRequest represents the request body for investment creation.
type CreateInvestmentRequest struct {
	Name             string   `json:"name"`
	Amount           *float64 `json:"amount"`
	Date             string   `json:"date"`
	CurrentValue     *float64 `json:"current_value"`
	InvestmentTypeID *string  `json:"investment_type_id"`
}

// UpdateInvestmentRequest represents the request body for investment update.
type UpdateInvestmentRequest struct {
	Name             *string  `json:"name"`
	Amount           *float64 `json:"amount"`
	Date             *string  `json:"date"`
	CurrentValue     *float64 `json:"current_value"`
	InvestmentTypeID *string  `json:"investment_type_id"`
}

// AmountRequest represents the request body for contribute and withdraw.
type AmountRequest struct {
	Amount *float64 `json:"amount"`
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Amount               float64                 `json:"amount"`
	Date                 string                  `json:"date"`
	CurrentValue         float64                 `json:"current_value"`
	InvestmentTypeID     string                  `json:"investment_type_id"`
	UserID               string                  `json:"user_id"`
	InvestmentType       *InvestmentTypeResponse `json:"investment_type"`
	ProfitLoss           float64                 `json:"profit_loss"`
	ProfitLossPercentage float64                 `json:"profit_loss_percentage"`
}

// InvestmentsSummaryResponse represents portfolio-level totals.
type InvestmentsSummaryResponse struct {
	TotalInvested             float64 `json:"total_invested"`
	TotalCurrentValue         float64 `json:"total_current_value"`
	TotalProfitLoss           float64 `json:"total_profit_loss"`
	TotalProfitLossPercentage float64 `json:"total_profit_loss_percentage"`
	InvestmentCount           int     `json:"investment_count"`
}

// ToInvestmentResponse converts an investment with its resolved type to a
// response DTO. Profit figures are computed here, never stored.
func ToInvestmentResponse(withType *entity.InvestmentWithType) InvestmentResponse {
	investment := withType.Investment

	var investmentType *InvestmentTypeResponse
	if withType.InvestmentType != nil {
		response := ToInvestmentTypeResponse(withType.InvestmentType)
		investmentType = &response
	}

	return InvestmentResponse{
		ID:                   investment.ID.String(),
		Name:                 investment.Name,
		Amount:               investment.Amount,
		Date:                 investment.Date.Format(dateLayout),
		CurrentValue:         investment.CurrentValue,
		InvestmentTypeID:     investment.InvestmentTypeID.String(),
		UserID:               investment.UserID.String(),
		InvestmentType:       investmentType,
		ProfitLoss:           investment.ProfitLoss(),
		ProfitLossPercentage: investment.ProfitLossPercentage(),
	}
}

// ToInvestmentListResponse converts a list of investments to response DTOs.
func ToInvestmentListResponse(investments []*entity.InvestmentWithType) []InvestmentResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, investment := range investments {
		responses[i] = ToInvestmentResponse(investment)
	}
	return responses
}

// ToInvestmentsSummaryResponse converts investment totals to a response DTO.
func ToInvestmentsSummaryResponse(totals entity.InvestmentTotals) InvestmentsSummaryResponse {
	return InvestmentsSummaryResponse{
		TotalInvested:             totals.TotalInvested,
		TotalCurrentValue:         totals.TotalCurrentValue,
		TotalProfitLoss:           totals.TotalProfitLoss,
		TotalProfitLossPercentage: totals.TotalProfitLossPercentage,
		InvestmentCount:           totals.InvestmentCount,
	}
}
