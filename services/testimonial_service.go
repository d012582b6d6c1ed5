package services

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

type TestimonialService struct {
	Repo *repository.TestimonialRepository
}

func NewTestimonialService(repo *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{Repo: repo}
}

func (s *TestimonialService) List() ([]entity.Testimonial, error) {
	return s.Repo.FindAll()
}

func (s *TestimonialService) ListApproved(limit int) ([]entity.Testimonial, error) {
	return s.Repo.FindApproved(limit)
}

func (s *TestimonialService) Get(id uint) (*entity.Testimonial, error) {
	return s.Repo.FindByID(id)
}

func (s *TestimonialService) Create(testimonial *entity.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}
	testimonial.Rating = clampRating(testimonial.Rating)
	return s.Repo.Create(testimonial)
}

func (s *TestimonialService) Update(id uint, testimonial *entity.Testimonial) error {
	if err := testimonial.Validate(); err != nil {
		return err
	}
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	image := testimonial.CustomerImage
	if image == "" {
		image = existing.CustomerImage
	}

	fields := map[string]any{
		"customer_name":  testimonial.CustomerName,
		"review":         testimonial.Review,
		"rating":         clampRating(testimonial.Rating),
		"customer_image": image,
		"is_approved":    testimonial.IsApproved,
	}
	return s.Repo.Update(id, fields)
}

func (s *TestimonialService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *TestimonialService) AverageRating() (float64, error) {
	return s.Repo.AverageRating()
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
