package services

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	MenuItems      int64                   `json:"menu_items"`
	Categories     int64                   `json:"categories"`
	Messages       int64                   `json:"messages"`
	UnreadMessages int64                   `json:"unread_messages"`
	Orders         int64                   `json:"orders"`
	PendingOrders  int64                   `json:"pending_orders"`
	AverageRating  float64                 `json:"average_rating"`
	RecentMessages []entity.ContactMessage `json:"recent_messages"`
}

type DashboardService struct {
	MenuItems    *repository.MenuItemRepository
	Categories   *repository.CategoryRepository
	Messages     *repository.MessageRepository
	Orders       *repository.OrderRepository
	Testimonials *repository.TestimonialRepository
}

func NewDashboardService(
	menuItems *repository.MenuItemRepository,
	categories *repository.CategoryRepository,
	messages *repository.MessageRepository,
	orders *repository.OrderRepository,
	testimonials *repository.TestimonialRepository,
) *DashboardService {
	return &DashboardService{
		MenuItems:    menuItems,
		Categories:   categories,
		Messages:     messages,
		Orders:       orders,
		Testimonials: testimonials,
	}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.MenuItems, err = s.MenuItems.Count(); err != nil {
		return nil, err
	}
	if stats.Categories, err = s.Categories.Count(); err != nil {
		return nil, err
	}
	if stats.Messages, err = s.Messages.Count(); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = s.Messages.CountUnread(); err != nil {
		return nil, err
	}
	if stats.Orders, err = s.Orders.Count(); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = s.Orders.CountByStatus(entity.OrderStatusPending); err != nil {
		return nil, err
	}
	if stats.AverageRating, err = s.Testimonials.AverageRating(); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.Messages.FindRecent(5); err != nil {
		return nil, err
	}
	return stats, nil
}
