package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

func newGalleryService(t *testing.T) *GalleryService {
	return NewGalleryService(repository.NewGalleryRepository(setupTestDB(t)))
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	svc := newGalleryService(t)

	err := svc.Create(&entity.GalleryImage{Title: "Latte art", IsActive: true})
	require.EqualError(t, err, "image is required")

	images, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, images, "the record must not be created without an image")
}

func TestGalleryLikeUnlike(t *testing.T) {
	svc := newGalleryService(t)

	image := &entity.GalleryImage{Title: "Bar", ImageURL: "http://x/a.jpg", IsActive: true}
	require.NoError(t, svc.Create(image))

	liked, err := svc.Like(image.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = svc.Like(image.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, liked.Likes)

	unliked, err := svc.Unlike(image.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, unliked.Likes)
}

func TestGalleryUnlikeFloorsAtZero(t *testing.T) {
	svc := newGalleryService(t)

	image := &entity.GalleryImage{Title: "Bar", ImageURL: "http://x/a.jpg", IsActive: true}
	require.NoError(t, svc.Create(image))

	unliked, err := svc.Unlike(image.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.Likes, "counter never goes negative")
}

func TestGalleryActiveOrdering(t *testing.T) {
	svc := newGalleryService(t)

	require.NoError(t, svc.Create(&entity.GalleryImage{Title: "Second", ImageURL: "u", IsActive: true, DisplayOrder: 2}))
	require.NoError(t, svc.Create(&entity.GalleryImage{Title: "First", ImageURL: "u", IsActive: true, DisplayOrder: 1}))
	require.NoError(t, svc.Create(&entity.GalleryImage{Title: "Hidden", ImageURL: "u", IsActive: false}))

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Title)
	assert.Equal(t, "Second", active[1].Title)
}

func TestGalleryUpdateKeepsImage(t *testing.T) {
	svc := newGalleryService(t)

	image := &entity.GalleryImage{Title: "Bar", ImageURL: "http://x/old.jpg", IsActive: true}
	require.NoError(t, svc.Create(image))

	require.NoError(t, svc.Update(image.ID, &entity.GalleryImage{Title: "Bar corner", IsActive: true}))

	updated, err := svc.Get(image.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bar corner", updated.Title)
	assert.Equal(t, "http://x/old.jpg", updated.ImageURL)
}
