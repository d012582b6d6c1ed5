package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

const blogBucket = "blog-images"

type BlogController struct {
	Service *services.BlogService
	Store   *storage.Store
}

func NewBlogController(service *services.BlogService, store *storage.Store) *BlogController {
	return &BlogController{Service: service, Store: store}
}

type blogPostRequest struct {
	Title       string `json:"title" form:"title"`
	Content     string `json:"content" form:"content"`
	Excerpt     string `json:"excerpt" form:"excerpt"`
	Author      string `json:"author" form:"author"`
	IsPublished bool   `json:"is_published" form:"is_published"`
}

func (r *blogPostRequest) toEntity() *entity.BlogPost {
	return &entity.BlogPost{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Author:      r.Author,
		IsPublished: r.IsPublished,
	}
}

// GET /admin/blog
func (ctl *BlogController) List(c *gin.Context) {
	posts, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": posts})
}

// GET /blog (public: published only, newest publication first)
func (ctl *BlogController) PublicList(c *gin.Context) {
	posts, err := ctl.Service.ListPublished()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": posts})
}

// GET /blog/:slug
func (ctl *BlogController) PublicBySlug(c *gin.Context) {
	post, err := ctl.Service.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "post not found")
		return
	}
	resp.OK(c, post)
}

// POST /admin/blog
func (ctl *BlogController) Create(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	post := req.toEntity()
	imageURL, upErr := uploadImage(c, ctl.Store, blogBucket)
	post.FeaturedImage = imageURL

	if err := ctl.Service.Create(post); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.CreatedWarn(c, post, "image upload rejected: "+upErr.Error())
		return
	}
	resp.Created(c, post)
}

// PATCH /admin/blog/:id
func (ctl *BlogController) Update(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	post := req.toEntity()
	imageURL, upErr := uploadImage(c, ctl.Store, blogBucket)
	post.FeaturedImage = imageURL

	if err := ctl.Service.Update(paramID(c), post); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.OKWarn(c, gin.H{"message": "post updated"},
			"image upload rejected, previous image kept: "+upErr.Error())
		return
	}
	resp.OK(c, gin.H{"message": "post updated"})
}

// DELETE /admin/blog/:id?confirm=true
func (ctl *BlogController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "post deleted"})
	}
}
