package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

const testimonialBucket = "customer-images"

type TestimonialController struct {
	Service *services.TestimonialService
	Store   *storage.Store
}

func NewTestimonialController(service *services.TestimonialService, store *storage.Store) *TestimonialController {
	return &TestimonialController{Service: service, Store: store}
}

type testimonialRequest struct {
	CustomerName string `json:"customer_name" form:"customer_name"`
	Review       string `json:"review" form:"review"`
	Rating       int    `json:"rating" form:"rating"`
	IsApproved   bool   `json:"is_approved" form:"is_approved"`
}

func (r *testimonialRequest) toEntity() *entity.Testimonial {
	return &entity.Testimonial{
		CustomerName: r.CustomerName,
		Review:       r.Review,
		Rating:       r.Rating,
		IsApproved:   r.IsApproved,
	}
}

// GET /admin/testimonials
func (ctl *TestimonialController) List(c *gin.Context) {
	testimonials, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": testimonials})
}

// GET /testimonials (public: approved only, ?limit= for the home page)
func (ctl *TestimonialController) PublicList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	testimonials, err := ctl.Service.ListApproved(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": testimonials})
}

// POST /admin/testimonials
func (ctl *TestimonialController) Create(c *gin.Context) {
	var req testimonialRequest
	req.Rating = 5
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	testimonial := req.toEntity()
	imageURL, upErr := uploadImage(c, ctl.Store, testimonialBucket)
	testimonial.CustomerImage = imageURL

	if err := ctl.Service.Create(testimonial); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.CreatedWarn(c, testimonial, "image upload rejected: "+upErr.Error())
		return
	}
	resp.Created(c, testimonial)
}

// PATCH /admin/testimonials/:id
func (ctl *TestimonialController) Update(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	testimonial := req.toEntity()
	imageURL, upErr := uploadImage(c, ctl.Store, testimonialBucket)
	testimonial.CustomerImage = imageURL

	if err := ctl.Service.Update(paramID(c), testimonial); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if upErr != nil {
		resp.OKWarn(c, gin.H{"message": "testimonial updated"},
			"image upload rejected, previous image kept: "+upErr.Error())
		return
	}
	resp.OK(c, gin.H{"message": "testimonial updated"})
}

// DELETE /admin/testimonials/:id?confirm=true
func (ctl *TestimonialController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "testimonial deleted"})
	}
}
