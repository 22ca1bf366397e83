package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// parsePeriodQuery parses the optional year and month query parameters.
func parsePeriodQuery(ctx *gin.Context) (year, month *int, ok bool) {
	if yearStr := ctx.Query("year"); yearStr != "" {
		value, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid year"})
			return nil, nil, false
		}
		year = &value
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		value, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid month"})
			return nil, nil, false
		}
		month = &value
	}
	return year, month, true
}
