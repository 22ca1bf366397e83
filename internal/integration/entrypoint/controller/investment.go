package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/usecase/investment"
	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	createUseCase     *investment.CreateInvestmentUseCase
	listUseCase       *investment.ListInvestmentsUseCase
	getUseCase        *investment.GetInvestmentUseCase
	updateUseCase     *investment.UpdateInvestmentUseCase
	deleteUseCase     *investment.DeleteInvestmentUseCase
	contributeUseCase *investment.ContributeToInvestmentUseCase
	withdrawUseCase   *investment.WithdrawFromInvestmentUseCase
	summaryUseCase    *investment.GetInvestmentsSummaryUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	getUseCase *investment.GetInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	contributeUseCase *investment.ContributeToInvestmentUseCase,
	withdrawUseCase *investment.WithdrawFromInvestmentUseCase,
	summaryUseCase *investment.GetInvestmentsSummaryUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
		withdrawUseCase:   withdrawUseCase,
		summaryUseCase:    summaryUseCase,
	}
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	investmentTypeID, ok := parseRefID(ctx, req.InvestmentTypeID, "Investment type")
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		UserID:           userID,
		Name:             req.Name,
		Amount:           req.Amount,
		Date:             req.Date,
		CurrentValue:     req.CurrentValue,
		InvestmentTypeID: investmentTypeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	year, month, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	var investmentTypeID *uuid.UUID
	if typeIDStr := ctx.Query("investment_type_id"); typeIDStr != "" {
		id, err := uuid.Parse(typeIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid investment type ID"})
			return
		}
		investmentTypeID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{
		UserID:           userID,
		InvestmentTypeID: investmentTypeID,
		Year:             year,
		Month:            month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Get handles GET /investments/:id requests.
func (c *InvestmentController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentID, ok := parsePathID(ctx, "Investment")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), investment.GetInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PUT /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentID, ok := parsePathID(ctx, "Investment")
	if !ok {
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	investmentTypeID, ok := parseRefID(ctx, req.InvestmentTypeID, "Investment type")
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		UserID:           userID,
		InvestmentID:     investmentID,
		Name:             req.Name,
		Amount:           req.Amount,
		Date:             req.Date,
		CurrentValue:     req.CurrentValue,
		InvestmentTypeID: investmentTypeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentID, ok := parsePathID(ctx, "Investment")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Investment deleted"})
}

// Contribute handles POST /investments/:id/contribute requests.
func (c *InvestmentController) Contribute(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentID, ok := parsePathID(ctx, "Investment")
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), investment.ContributeToInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
		Amount:       req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Withdraw handles POST /investments/:id/withdraw requests.
func (c *InvestmentController) Withdraw(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentID, ok := parsePathID(ctx, "Investment")
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.withdrawUseCase.Execute(ctx.Request.Context(), investment.WithdrawFromInvestmentInput{
		UserID:       userID,
		InvestmentID: investmentID,
		Amount:       req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Summary handles GET /investments/summary requests.
func (c *InvestmentController) Summary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), investment.GetInvestmentsSummaryInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentsSummaryResponse(output.Totals))
}
