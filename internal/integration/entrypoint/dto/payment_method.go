package dto

import "github.com/finwise/backend/internal/domain/entity"

// CreatePaymentMethodRequest represents the request body for creation.
type CreatePaymentMethodRequest struct {
	Name string `json:"name"`
}

// UpdatePaymentMethodRequest represents the request body for update.
type UpdatePaymentMethodRequest struct {
	Name *string `json:"name"`
}

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

// ToPaymentMethodResponse converts a domain entity to a response DTO.
func ToPaymentMethodResponse(paymentMethod *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:     paymentMethod.ID.String(),
		Name:   paymentMethod.Name,
		UserID: paymentMethod.UserID.String(),
	}
}

// ToPaymentMethodListResponse converts a list of payment methods to DTOs.
func ToPaymentMethodListResponse(paymentMethods []*entity.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(paymentMethods))
	for i, paymentMethod := range paymentMethods {
		responses[i] = ToPaymentMethodResponse(paymentMethod)
	}
	return responses
}
