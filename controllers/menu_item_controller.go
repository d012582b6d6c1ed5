package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

const menuBucket = "menu-images"

type MenuItemController struct {
	Service *services.MenuItemService
	Store   *storage.Store
}

func NewMenuItemController(service *services.MenuItemService, store *storage.Store) *MenuItemController {
	return &MenuItemController{Service: service, Store: store}
}

type menuItemRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"` // decimal string, empty for no price
	CategoryID  uint   `json:"category_id" form:"category_id"`
	IsAvailable bool   `json:"is_available" form:"is_available"`
	IsFeatured  bool   `json:"is_featured" form:"is_featured"`
}

func (r *menuItemRequest) toEntity() (*entity.MenuItem, error) {
	price := decimal.Zero
	if r.Price != "" {
		var err error
		if price, err = decimal.NewFromString(r.Price); err != nil {
			return nil, err
		}
	}
	return &entity.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		CategoryID:  r.CategoryID,
		IsAvailable: r.IsAvailable,
		IsFeatured:  r.IsFeatured,
	}, nil
}

// GET /admin/menu-items?q=&category_id=
// The whole collection is fetched and reduced in memory, mirroring the
// dashboard's keystroke filter.
func (ctl *MenuItemController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	items = services.Filter(items, c.Query("q"), uint(categoryID))
	resp.OK(c, gin.H{"items": items})
}

// GET /menu (public: available items, plus ?featured=true&limit=6 for home)
func (ctl *MenuItemController) PublicList(c *gin.Context) {
	if c.Query("featured") == "true" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
		items, err := ctl.Service.ListFeatured(limit)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": items})
		return
	}

	items, err := ctl.Service.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/menu-items (multipart with optional "image" part, or JSON)
func (ctl *MenuItemController) Create(c *gin.Context) {
	var req menuItemRequest
	req.IsAvailable = true
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := req.toEntity()
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}

	// A rejected upload does not fail the save; the item is created
	// without an image and the rejection is reported back.
	imageURL, upErr := uploadImage(c, ctl.Store, menuBucket)
	item.ImageURL = imageURL

	if err := ctl.Service.Create(item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.CreatedWarn(c, item, "image upload rejected: "+upErr.Error())
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu-items/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := req.toEntity()
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}

	// Empty URL after a failed or absent upload keeps the stored image.
	imageURL, upErr := uploadImage(c, ctl.Store, menuBucket)
	item.ImageURL = imageURL

	if err := ctl.Service.Update(paramID(c), item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.OKWarn(c, gin.H{"message": "menu item updated"},
			"image upload rejected, previous image kept: "+upErr.Error())
		return
	}
	resp.OK(c, gin.H{"message": "menu item updated"})
}

// DELETE /admin/menu-items/:id?confirm=true
func (ctl *MenuItemController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "menu item deleted"})
	}
}
