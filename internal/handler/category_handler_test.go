package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestListCategories_ReturnsFixedSet(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := ListCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 9 {
		t.Fatalf("Expected 9 categories, got %d", len(response))
	}

	if response[0].Name != "Food & Dining" {
		t.Errorf("Expected 'Food & Dining' first, got %s", response[0].Name)
	}

	for _, cat := range response {
		if cat.Color == "" {
			t.Errorf("Expected a badge color for %s", cat.Name)
		}
	}
}
