package handler

import (
	"net/http"

	"github.com/Rugged007/Finance-App/internal/domain"
	"github.com/labstack/echo/v4"
)

// CategoryResponse represents a selectable category with its badge color
type CategoryResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListCategories godoc
// @Summary List categories
// @Description The fixed category set offered by the transaction form selector
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /categories [get]
func ListCategories(c echo.Context) error {
	categories := domain.Categories()
	response := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		response[i] = CategoryResponse{Name: string(cat), Color: cat.Color()}
	}
	return c.JSON(http.StatusOK, response)
}
