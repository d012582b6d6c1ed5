package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func categoryFixture(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Category{}))

	ctl := NewCategoryController(services.NewCategoryService(repository.NewCategoryRepository(db)))

	r := gin.New()
	r.GET("/admin/categories", ctl.List)
	r.POST("/admin/categories", ctl.Create)
	r.DELETE("/admin/categories/:id", ctl.Delete)
	return r, db
}

func TestCategoryCreateEndpoint(t *testing.T) {
	r, db := categoryFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/categories",
		strings.NewReader(`{"name":"Cold Brew","display_order":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"slug":"cold-brew"`)

	var category entity.Category
	require.NoError(t, db.First(&category).Error)
	assert.Equal(t, "cold-brew", category.Slug)
	assert.True(t, category.IsActive, "availability-style booleans default to true")
}

func TestCategoryCreateEndpointMissingName(t *testing.T) {
	r, db := categoryFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/categories",
		strings.NewReader(`{"description":"nameless"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")

	var count int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCategoryDeleteRequiresConfirmation(t *testing.T) {
	r, db := categoryFixture(t)
	require.NoError(t, db.Create(&entity.Category{Name: "Espresso", Slug: "espresso", IsActive: true}).Error)

	// Without ?confirm=true the gate cancels and nothing is removed.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/admin/categories/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation required")

	var count int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Confirmed, the delete goes through.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/admin/categories/1?confirm=true", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Model(&entity.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}
