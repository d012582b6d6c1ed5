package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

var ErrInvalidStatus = errors.New("invalid order status")

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.Repo.FindByID(id)
}

// Place records an order from the public site, assigning the order number
// and starting it at pending.
func (s *OrderService) Place(order *entity.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	order.OrderNumber = fmt.Sprintf("ORD-%d", time.Now().UnixNano())
	order.Status = entity.OrderStatusPending
	return s.Repo.Create(order)
}

// UpdateStatus writes a new status after checking it is one of the known
// values. No transition graph is enforced beyond membership.
func (s *OrderService) UpdateStatus(id uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	affected, err := s.Repo.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("order not found")
	}
	return nil
}
