package services

import (
	"time"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

func (s *PromotionService) List() ([]entity.Promotion, error) {
	return s.Repo.FindAll()
}

func (s *PromotionService) ListActive() ([]entity.Promotion, error) {
	return s.Repo.FindActive(time.Now())
}

func (s *PromotionService) Get(id uint) (*entity.Promotion, error) {
	return s.Repo.FindByID(id)
}

func (s *PromotionService) Create(promotion *entity.Promotion) error {
	if err := promotion.Validate(); err != nil {
		return err
	}
	return s.Repo.Create(promotion)
}

func (s *PromotionService) Update(id uint, promotion *entity.Promotion) error {
	if err := promotion.Validate(); err != nil {
		return err
	}
	fields := map[string]any{
		"promo_code":   promotion.PromoCode,
		"promo_detail": promotion.PromoDetail,
		"value":        promotion.Value,
		"min_order":    promotion.MinOrder,
		"is_active":    promotion.IsActive,
		"start_at":     promotion.StartAt,
		"end_at":       promotion.EndAt,
	}
	return s.Repo.Update(id, fields)
}

func (s *PromotionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
