package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func menuItemFixture(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Category{}, &entity.MenuItem{}))
	require.NoError(t, db.Create(&entity.Category{Name: "Espresso", Slug: "espresso", IsActive: true}).Error)

	store := storage.NewStore(t.TempDir(), "http://localhost:8080")
	ctl := NewMenuItemController(services.NewMenuItemService(repository.NewMenuItemRepository(db)), store)

	r := gin.New()
	r.POST("/admin/menu-items", ctl.Create)
	return r, db
}

func TestMenuItemCreateExplicitlyUnavailable(t *testing.T) {
	r, db := menuItemFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/menu-items",
		strings.NewReader(`{"name":"Affogato","category_id":1,"price":"4.50","is_available":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item entity.MenuItem
	require.NoError(t, db.First(&item).Error)
	assert.False(t, item.IsAvailable, "a create that says unavailable must stay unavailable")
}

func TestMenuItemCreateRejectedUploadWarns(t *testing.T) {
	r, db := menuItemFixture(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Latte"))
	require.NoError(t, mw.WriteField("category_id", "1"))
	require.NoError(t, mw.WriteField("price", "3.75"))
	require.NoError(t, mw.WriteField("is_available", "true"))

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="notes.txt"`)
	hdr.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/menu-items", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	// The item is still created, but the response says the image was dropped.
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "warning")
	assert.Contains(t, w.Body.String(), "image upload rejected")

	var item entity.MenuItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, "Latte", item.Name)
	assert.Empty(t, item.ImageURL)
}
