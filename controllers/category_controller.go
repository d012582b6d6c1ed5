package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

type categoryRequest struct {
	Name         string `json:"name" form:"name"`
	Description  string `json:"description" form:"description"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
	IsActive     bool   `json:"is_active" form:"is_active"`
}

func (r *categoryRequest) toEntity() *entity.Category {
	return &entity.Category{
		Name:         r.Name,
		Description:  r.Description,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

// GET /admin/categories
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": categories})
}

// GET /categories (public: active only, display order)
func (ctl *CategoryController) PublicList(c *gin.Context) {
	categories, err := ctl.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": categories})
}

// POST /admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryRequest
	req.IsActive = true
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category := req.toEntity()
	if err := ctl.Service.Create(category); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, category)
}

// PATCH /admin/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Update(paramID(c), req.toEntity()); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "category updated"})
}

// DELETE /admin/categories/:id?confirm=true
func (ctl *CategoryController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "category deleted"})
	}
}
