package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finwise/backend/internal/application/usecase/admin"
	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// AdminController handles operator maintenance endpoints.
type AdminController struct {
	cleanDatabaseUseCase    *admin.CleanDatabaseUseCase
	seedUserDefaultsUseCase *admin.SeedUserDefaultsUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	cleanDatabaseUseCase *admin.CleanDatabaseUseCase,
	seedUserDefaultsUseCase *admin.SeedUserDefaultsUseCase,
) *AdminController {
	return &AdminController{
		cleanDatabaseUseCase:    cleanDatabaseUseCase,
		seedUserDefaultsUseCase: seedUserDefaultsUseCase,
	}
}

// CleanDatabase handles POST /admin/clean-database requests.
func (c *AdminController) CleanDatabase(ctx *gin.Context) {
	if err := c.cleanDatabaseUseCase.Execute(ctx.Request.Context()); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All tables dropped and recreated successfully."})
}

// SeedUserDefaults handles POST /admin/users/:id/seed-defaults requests.
func (c *AdminController) SeedUserDefaults(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		return
	}

	err = c.seedUserDefaultsUseCase.Execute(ctx.Request.Context(), admin.SeedUserDefaultsInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Default resources created successfully"})
}
