package dto

import "github.com/finwise/backend/internal/domain/entity"

// CreateInvestmentTypeRequest represents the request body for creation.
type CreateInvestmentTypeRequest struct {
	Name string `json:"name"`
}

// UpdateInvestmentTypeRequest represents the request body for update.
type UpdateInvestmentTypeRequest struct {
	Name *string `json:"name"`
}

// InvestmentTypeResponse represents an investment type in API responses.
type InvestmentTypeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// ToInvestmentTypeResponse converts a domain entity to a response DTO.
func ToInvestmentTypeResponse(investmentType *entity.InvestmentType) InvestmentTypeResponse {
	return InvestmentTypeResponse{
		ID:     investmentType.ID.String(),
		Name:   investmentType.Name,
		UserID: investmentType.UserID.String(),
	}
}

// ToInvestmentTypeListResponse converts a list of investment types to DTOs.
func ToInvestmentTypeListResponse(investmentTypes []*entity.InvestmentType) []InvestmentTypeResponse {
	responses := make([]InvestmentTypeResponse, len(investmentTypes))
	for i, investmentType := range investmentTypes {
		responses[i] = ToInvestmentTypeResponse(investmentType)
	}
	return responses
}
