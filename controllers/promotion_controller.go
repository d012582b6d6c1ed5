package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type PromotionController struct {
	Service *services.PromotionService
}

func NewPromotionController(service *services.PromotionService) *PromotionController {
	return &PromotionController{Service: service}
}

type promotionRequest struct {
	PromoCode   string     `json:"promo_code"`
	PromoDetail string     `json:"promo_detail"`
	Value       uint       `json:"value"`
	MinOrder    string     `json:"min_order"`
	IsActive    bool       `json:"is_active"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
}

func (r *promotionRequest) toEntity() (*entity.Promotion, error) {
	minOrder := decimal.Zero
	if r.MinOrder != "" {
		var err error
		if minOrder, err = decimal.NewFromString(r.MinOrder); err != nil {
			return nil, err
		}
	}
	return &entity.Promotion{
		PromoCode:   r.PromoCode,
		PromoDetail: r.PromoDetail,
		Value:       r.Value,
		MinOrder:    minOrder,
		IsActive:    r.IsActive,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
	}, nil
}

// GET /admin/promotions
func (ctl *PromotionController) List(c *gin.Context) {
	promotions, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": promotions})
}

// GET /promotions (public: inside their active window)
func (ctl *PromotionController) PublicList(c *gin.Context) {
	promotions, err := ctl.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": promotions})
}

// POST /admin/promotions
func (ctl *PromotionController) Create(c *gin.Context) {
	var req promotionRequest
	req.IsActive = true
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promotion, err := req.toEntity()
	if err != nil {
		resp.BadRequest(c, "invalid minimum order amount")
		return
	}
	if err := ctl.Service.Create(promotion); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, promotion)
}

// PATCH /admin/promotions/:id
func (ctl *PromotionController) Update(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promotion, err := req.toEntity()
	if err != nil {
		resp.BadRequest(c, "invalid minimum order amount")
		return
	}
	if err := ctl.Service.Update(paramID(c), promotion); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "promotion updated"})
}

// DELETE /admin/promotions/:id?confirm=true
func (ctl *PromotionController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "promotion deleted"})
	}
}
