package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/application/usecase/paymentmethod"
	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// PaymentMethodController handles payment method endpoints.
type PaymentMethodController struct {
	createUseCase *paymentmethod.CreatePaymentMethodUseCase
	listUseCase   *paymentmethod.ListPaymentMethodsUseCase
	getUseCase    *paymentmethod.GetPaymentMethodUseCase
	updateUseCase *paymentmethod.UpdatePaymentMethodUseCase
	deleteUseCase *paymentmethod.DeletePaymentMethodUseCase
}

// NewPaymentMethodController creates a new payment method controller instance.
func NewPaymentMethodController(
	createUseCase *paymentmethod.CreatePaymentMethodUseCase,
	listUseCase *paymentmethod.ListPaymentMethodsUseCase,
	getUseCase *paymentmethod.GetPaymentMethodUseCase,
	updateUseCase *paymentmethod.UpdatePaymentMethodUseCase,
	deleteUseCase *paymentmethod.DeletePaymentMethodUseCase,
) *PaymentMethodController {
	return &PaymentMethodController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /payment-methods requests.
func (c *PaymentMethodController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), paymentmethod.CreatePaymentMethodInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(output.PaymentMethod))
}

// List handles GET /payment-methods requests.
func (c *PaymentMethodController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), paymentmethod.ListPaymentMethodsInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodListResponse(output.PaymentMethods))
}

// Get handles GET /payment-methods/:id requests.
func (c *PaymentMethodController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	paymentMethodID, ok := parsePathID(ctx, "Payment method")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), paymentmethod.GetPaymentMethodInput{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponse(output.PaymentMethod))
}

// Update handles PUT /payment-methods/:id requests.
func (c *PaymentMethodController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	paymentMethodID, ok := parsePathID(ctx, "Payment method")
	if !ok {
		return
	}

	var req dto.UpdatePaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), paymentmethod.UpdatePaymentMethodInput{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		Name:            req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentMethodResponse(output.PaymentMethod))
}

// Delete handles DELETE /payment-methods/:id requests.
func (c *PaymentMethodController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	paymentMethodID, ok := parsePathID(ctx, "Payment method")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), paymentmethod.DeletePaymentMethodInput{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment method deleted"})
}
