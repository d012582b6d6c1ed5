package services

import (
	"strings"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/utils"
)

type MenuItemService struct {
	Repo *repository.MenuItemRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{Repo: repo}
}

func (s *MenuItemService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuItemService) ListAvailable() ([]entity.MenuItem, error) {
	return s.Repo.FindAvailable()
}

func (s *MenuItemService) ListFeatured(limit int) ([]entity.MenuItem, error) {
	return s.Repo.FindFeatured(limit)
}

func (s *MenuItemService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuItemService) Create(item *entity.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.Slug = utils.Slugify(item.Name)
	item.Category = nil
	return s.Repo.Create(item)
}

// Update writes the full field set. An empty image URL means "no new image
// was uploaded": the stored one is kept.
func (s *MenuItemService) Update(id uint, item *entity.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	imageURL := item.ImageURL
	if imageURL == "" {
		imageURL = existing.ImageURL
	}

	fields := map[string]any{
		"name":         item.Name,
		"slug":         utils.Slugify(item.Name),
		"description":  item.Description,
		"price":        item.Price,
		"category_id":  item.CategoryID,
		"image_url":    imageURL,
		"is_available": item.IsAvailable,
		"is_featured":  item.IsFeatured,
	}
	return s.Repo.Update(id, fields)
}

func (s *MenuItemService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// Filter reduces an already-fetched collection in memory: substring match on
// name or description, equality match on category id. Zero categoryID means
// no category filter.
func Filter(items []entity.MenuItem, query string, categoryID uint) []entity.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		if categoryID != 0 && item.CategoryID != categoryID {
			continue
		}
		out = append(out, item)
	}
	return out
}
