package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

const galleryBucket = "gallery-images"

type GalleryController struct {
	Service *services.GalleryService
	Store   *storage.Store
}

func NewGalleryController(service *services.GalleryService, store *storage.Store) *GalleryController {
	return &GalleryController{Service: service, Store: store}
}

type galleryImageRequest struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Category     string `json:"category" form:"category"`
	IsActive     bool   `json:"is_active" form:"is_active"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

func (r *galleryImageRequest) toEntity() *entity.GalleryImage {
	return &entity.GalleryImage{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// GET /admin/gallery
func (ctl *GalleryController) List(c *gin.Context) {
	images, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": images})
}

// GET /gallery (public: active only, display order)
func (ctl *GalleryController) PublicList(c *gin.Context) {
	images, err := ctl.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": images})
}

// POST /admin/gallery (multipart with a required "image" part)
func (ctl *GalleryController) Create(c *gin.Context) {
	var req galleryImageRequest
	req.IsActive = true
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	image := req.toEntity()

	// A gallery row is its picture: a rejected upload fails the create
	// with the rejection reason, and no record is written.
	url, err := uploadImage(c, ctl.Store, galleryBucket)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	image.ImageURL = url

	if err := ctl.Service.Create(image); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, image)
}

// PATCH /admin/gallery/:id
func (ctl *GalleryController) Update(c *gin.Context) {
	var req galleryImageRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	image := req.toEntity()
	imageURL, upErr := uploadImage(c, ctl.Store, galleryBucket)
	image.ImageURL = imageURL

	if err := ctl.Service.Update(paramID(c), image); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.OKWarn(c, gin.H{"message": "image updated"},
			"image upload rejected, previous image kept: "+upErr.Error())
		return
	}
	resp.OK(c, gin.H{"message": "image updated"})
}

// DELETE /admin/gallery/:id?confirm=true
func (ctl *GalleryController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "image deleted"})
	}
}

// POST /gallery/:id/like
func (ctl *GalleryController) Like(c *gin.Context) {
	image, err := ctl.Service.Like(paramID(c))
	if err != nil {
		resp.NotFound(c, "image not found")
		return
	}
	resp.OK(c, image)
}

// POST /gallery/:id/unlike
func (ctl *GalleryController) Unlike(c *gin.Context) {
	image, err := ctl.Service.Unlike(paramID(c))
	if err != nil {
		resp.NotFound(c, "image not found")
		return
	}
	resp.OK(c, image)
}
