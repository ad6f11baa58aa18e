package interfaces

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebuszqo/BudgetTracker/internal/finance/domain"
)

func TestGetCategories(t *testing.T) {
	mockService := &MockCategoryService{
		names:  []string{"Food", "Rent", "Salary"},
		custom: []domain.Category{{ID: 1, Name: "Salary"}},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.GetCategories(w, authedRequest(http.MethodGet, "/api/protected/categories", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Food", "Rent", "Salary"}, decodeBody(w.Result())["data"])

	w = httptest.NewRecorder()
	handler.GetCategories(w, authedRequest(http.MethodGet, "/api/protected/categories?custom=true", nil, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(w.Result())["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.Equal(t, "Salary", data[0].(map[string]interface{})["name"])
}

func TestGetCategories_ErrorFromService(t *testing.T) {
	w := httptest.NewRecorder()
	NewCategoryHandler(&MockCategoryService{shouldFail: true}, respondJSON, respondError).
		GetCategories(w, authedRequest(http.MethodGet, "/api/protected/categories", nil, "u1"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve categories", decodeBody(w.Result())["message"])
}

func TestCreateCategory(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{custom: []domain.Category{{ID: 1, Name: "Salary"}}}, respondJSON, respondError)

	w := httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/protected/categories", strings.NewReader(`{"name":"Books"}`), "u1"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/protected/categories", strings.NewReader(`{"name":"Salary"}`), "u1"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "category already exists", decodeBody(w.Result())["message"])

	w = httptest.NewRecorder()
	handler.CreateCategory(w, authedRequest(http.MethodPost, "/api/protected/categories", strings.NewReader(`nope`), "u1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{custom: []domain.Category{{ID: 3, Name: "Books"}}}, respondJSON, respondError)

	req := authedRequest(http.MethodDelete, "/api/protected/categories/3", nil, "u1")
	req.SetPathValue("categoryID", "3")
	w := httptest.NewRecorder()
	handler.DeleteCategory(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = authedRequest(http.MethodDelete, "/api/protected/categories/4", nil, "u1")
	req.SetPathValue("categoryID", "4")
	w = httptest.NewRecorder()
	handler.DeleteCategory(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
