package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/application/usecase/investmenttype"
	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// InvestmentTypeController handles investment type endpoints.
type InvestmentTypeController struct {
	createUseCase *investmenttype.CreateInvestmentTypeUseCase
	listUseCase   *investmenttype.ListInvestmentTypesUseCase
	getUseCase    *investmenttype.GetInvestmentTypeUseCase
	updateUseCase *investmenttype.UpdateInvestmentTypeUseCase
	deleteUseCase *investmenttype.DeleteInvestmentTypeUseCase
}

// NewInvestmentTypeController creates a new investment type controller instance.
func NewInvestmentTypeController(
	createUseCase *investmenttype.CreateInvestmentTypeUseCase,
	listUseCase *investmenttype.ListInvestmentTypesUseCase,
	getUseCase *investmenttype.GetInvestmentTypeUseCase,
	updateUseCase *investmenttype.UpdateInvestmentTypeUseCase,
	deleteUseCase *investmenttype.DeleteInvestmentTypeUseCase,
) *InvestmentTypeController {
	return &InvestmentTypeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /investment-types requests.
func (c *InvestmentTypeController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateInvestmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investmenttype.CreateInvestmentTypeInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentTypeResponse(output.InvestmentType))
}

// List handles GET /investment-types requests.
func (c *InvestmentTypeController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investmenttype.ListInvestmentTypesInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentTypeListResponse(output.InvestmentTypes))
}

// Get handles GET /investment-types/:id requests.
func (c *InvestmentTypeController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentTypeID, ok := parsePathID(ctx, "Investment type")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), investmenttype.GetInvestmentTypeInput{
		UserID:           userID,
		InvestmentTypeID: investmentTypeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentTypeResponse(output.InvestmentType))
}

// Update handles PUT /investment-types/:id requests.
func (c *InvestmentTypeController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentTypeID, ok := parsePathID(ctx, "Investment type")
	if !ok {
		return
	}

	var req dto.UpdateInvestmentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investmenttype.UpdateInvestmentTypeInput{
		UserID:           userID,
		InvestmentTypeID: investmentTypeID,
		Name:             req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentTypeResponse(output.InvestmentType))
}

// Delete handles DELETE /investment-types/:id requests.
func (c *InvestmentTypeController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	investmentTypeID, ok := parsePathID(ctx, "Investment type")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), investmenttype.DeleteInvestmentTypeInput{
		UserID:           userID,
		InvestmentTypeID: investmentTypeID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Investment type deleted"})
}
