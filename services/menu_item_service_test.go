package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"gorm.io/gorm"
)

func newMenuFixture(t *testing.T) (*MenuItemService, *CategoryService, *gorm.DB) {
	db := setupTestDB(t)
	return NewMenuItemService(repository.NewMenuItemRepository(db)),
		NewCategoryService(repository.NewCategoryRepository(db)),
		db
}

func TestMenuItemCreate(t *testing.T) {
	items, categories, _ := newMenuFixture(t)

	category := &entity.Category{Name: "Espresso", IsActive: true}
	require.NoError(t, categories.Create(category))

	item := &entity.MenuItem{
		Name:        "Cappuccino",
		Price:       decimal.RequireFromString("3.50"),
		CategoryID:  category.ID,
		IsAvailable: true,
	}
	require.NoError(t, items.Create(item))
	assert.Equal(t, "cappuccino", item.Slug)

	listed, err := items.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Category, "category should be joined in")
	assert.Equal(t, "Espresso", listed[0].Category.Name)
	assert.True(t, listed[0].Price.Equal(decimal.RequireFromString("3.50")))
}

func TestMenuItemRequiredFieldsBlockWrite(t *testing.T) {
	items, _, db := newMenuFixture(t)

	err := items.Create(&entity.MenuItem{CategoryID: 1})
	require.EqualError(t, err, "name is required")

	err = items.Create(&entity.MenuItem{Name: "Latte"})
	require.EqualError(t, err, "category is required")

	var count int64
	require.NoError(t, db.Model(&entity.MenuItem{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be written when validation fails")
}

func TestMenuItemUpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	items, categories, _ := newMenuFixture(t)

	category := &entity.Category{Name: "Espresso", IsActive: true}
	require.NoError(t, categories.Create(category))

	item := &entity.MenuItem{
		Name:        "Latte",
		CategoryID:  category.ID,
		ImageURL:    "http://x/uploads/menu-images/old.jpg",
		IsAvailable: true,
	}
	require.NoError(t, items.Create(item))

	require.NoError(t, items.Update(item.ID, &entity.MenuItem{
		Name:        "Latte",
		CategoryID:  category.ID,
		ImageURL:    "", // no new upload
		IsAvailable: true,
	}))

	updated, err := items.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://x/uploads/menu-images/old.jpg", updated.ImageURL)

	// A fresh upload replaces it.
	require.NoError(t, items.Update(item.ID, &entity.MenuItem{
		Name:        "Latte",
		CategoryID:  category.ID,
		ImageURL:    "http://x/uploads/menu-images/new.jpg",
		IsAvailable: true,
	}))
	updated, err = items.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://x/uploads/menu-images/new.jpg", updated.ImageURL)
}

func TestFilter(t *testing.T) {
	all := []entity.MenuItem{
		{Name: "Cappuccino", Description: "classic milk foam", CategoryID: 1},
		{Name: "Cold Brew", Description: "slow steeped", CategoryID: 2},
		{Name: "Croissant", Description: "buttery", CategoryID: 3},
	}

	// Substring on name, case-insensitive.
	got := Filter(all, "capp", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Cappuccino", got[0].Name)

	// Substring on description too.
	got = Filter(all, "steeped", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "Cold Brew", got[0].Name)

	// Category equality.
	got = Filter(all, "", 3)
	require.Len(t, got, 1)
	assert.Equal(t, "Croissant", got[0].Name)

	// Both at once.
	got = Filter(all, "c", 2)
	require.Len(t, got, 1)
	assert.Equal(t, "Cold Brew", got[0].Name)

	// No filter returns everything.
	assert.Len(t, Filter(all, "", 0), 3)

	// No match is an empty, non-nil slice.
	got = Filter(all, "tea", 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMenuItemFeaturedAndAvailable(t *testing.T) {
	items, categories, _ := newMenuFixture(t)

	category := &entity.Category{Name: "Espresso", IsActive: true}
	require.NoError(t, categories.Create(category))

	require.NoError(t, items.Create(&entity.MenuItem{
		Name: "Latte", CategoryID: category.ID, IsAvailable: true, IsFeatured: true,
	}))
	require.NoError(t, items.Create(&entity.MenuItem{
		Name: "Mocha", CategoryID: category.ID, IsAvailable: false, IsFeatured: true,
	}))
	require.NoError(t, items.Create(&entity.MenuItem{
		Name: "Flat White", CategoryID: category.ID, IsAvailable: true,
	}))

	available, err := items.ListAvailable()
	require.NoError(t, err)
	assert.Len(t, available, 2)

	featured, err := items.ListFeatured(6)
	require.NoError(t, err)
	require.Len(t, featured, 1, "unavailable items are not featured")
	assert.Equal(t, "Latte", featured[0].Name)
}

func TestMenuItemFeaturedNewestFirst(t *testing.T) {
	items, categories, _ := newMenuFixture(t)

	category := &entity.Category{Name: "Espresso", IsActive: true}
	require.NoError(t, categories.Create(category))

	for _, name := range []string{"Latte", "Mocha", "Cortado"} {
		require.NoError(t, items.Create(&entity.MenuItem{
			Name: name, CategoryID: category.ID, IsAvailable: true, IsFeatured: true,
		}))
		time.Sleep(5 * time.Millisecond)
	}

	featured, err := items.ListFeatured(2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "Cortado", featured[0].Name)
	assert.Equal(t, "Mocha", featured[1].Name)
}
