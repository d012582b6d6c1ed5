package services

import (
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

type MessageService struct {
	Repo *repository.MessageRepository
}

func NewMessageService(repo *repository.MessageRepository) *MessageService {
	return &MessageService{Repo: repo}
}

func (s *MessageService) List() ([]entity.ContactMessage, error) {
	return s.Repo.FindAll()
}

// Submit records a message from the public contact form. The admin UI
// never creates messages.
func (s *MessageService) Submit(message *entity.ContactMessage) error {
	if err := message.Validate(); err != nil {
		return err
	}
	message.IsRead = false
	return s.Repo.Create(message)
}

func (s *MessageService) MarkRead(id uint) error {
	return s.Repo.MarkRead(id)
}

func (s *MessageService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
