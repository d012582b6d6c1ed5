package services

import (
	"time"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/utils"
)

type BlogService struct {
	Repo *repository.BlogRepository
}

func NewBlogService(repo *repository.BlogRepository) *BlogService {
	return &BlogService{Repo: repo}
}

func (s *BlogService) List() ([]entity.BlogPost, error) {
	return s.Repo.FindAll()
}

func (s *BlogService) ListPublished() ([]entity.BlogPost, error) {
	return s.Repo.FindPublished()
}

func (s *BlogService) GetPublishedBySlug(slug string) (*entity.BlogPost, error) {
	return s.Repo.FindPublishedBySlug(slug)
}

func (s *BlogService) Get(id uint) (*entity.BlogPost, error) {
	return s.Repo.FindByID(id)
}

func (s *BlogService) Create(post *entity.BlogPost) error {
	if err := post.Validate(); err != nil {
		return err
	}
	post.Slug = utils.Slugify(post.Title)
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	} else {
		post.PublishedAt = nil
	}
	return s.Repo.Create(post)
}

// Update saves the full field set. published_at is stamped only on the
// transition into published, cleared on unpublish, and left alone when a
// published post is re-saved.
func (s *BlogService) Update(id uint, post *entity.BlogPost) error {
	if err := post.Validate(); err != nil {
		return err
	}
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	publishedAt := existing.PublishedAt
	switch {
	case post.IsPublished && !existing.IsPublished:
		now := time.Now()
		publishedAt = &now
	case !post.IsPublished:
		publishedAt = nil
	}

	image := post.FeaturedImage
	if image == "" {
		image = existing.FeaturedImage
	}

	fields := map[string]any{
		"title":          post.Title,
		"slug":           utils.Slugify(post.Title),
		"content":        post.Content,
		"excerpt":        post.Excerpt,
		"author":         post.Author,
		"featured_image": image,
		"is_published":   post.IsPublished,
		"published_at":   publishedAt,
	}
	return s.Repo.Update(id, fields)
}

func (s *BlogService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
