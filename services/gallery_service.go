package services

import (
	"errors"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

var errImageRequired = errors.New("image is required")

type GalleryService struct {
	Repo *repository.GalleryRepository
}

func NewGalleryService(repo *repository.GalleryRepository) *GalleryService {
	return &GalleryService{Repo: repo}
}

func (s *GalleryService) List() ([]entity.GalleryImage, error) {
	return s.Repo.FindAll()
}

func (s *GalleryService) ListActive() ([]entity.GalleryImage, error) {
	return s.Repo.FindActive()
}

func (s *GalleryService) Get(id uint) (*entity.GalleryImage, error) {
	return s.Repo.FindByID(id)
}

// Create requires an uploaded image: a gallery row without a picture is
// useless on the public site.
func (s *GalleryService) Create(image *entity.GalleryImage) error {
	if err := image.Validate(); err != nil {
		return err
	}
	if image.ImageURL == "" {
		return errImageRequired
	}
	return s.Repo.Create(image)
}

func (s *GalleryService) Update(id uint, image *entity.GalleryImage) error {
	if err := image.Validate(); err != nil {
		return err
	}
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	url := image.ImageURL
	if url == "" {
		url = existing.ImageURL
	}

	fields := map[string]any{
		"title":         image.Title,
		"description":   image.Description,
		"category":      image.Category,
		"image_url":     url,
		"is_active":     image.IsActive,
		"display_order": image.DisplayOrder,
	}
	return s.Repo.Update(id, fields)
}

func (s *GalleryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// Like and Unlike back the public site's cosmetic "liked" toggle; the
// client keeps its own liked set, the server just keeps the counter.
func (s *GalleryService) Like(id uint) (*entity.GalleryImage, error) {
	if err := s.Repo.IncrementLikes(id); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *GalleryService) Unlike(id uint) (*entity.GalleryImage, error) {
	if err := s.Repo.DecrementLikes(id); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
