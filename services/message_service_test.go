package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
)

func newMessageService(t *testing.T) *MessageService {
	return NewMessageService(repository.NewMessageRepository(setupTestDB(t)))
}

func TestMessageSubmitStartsUnread(t *testing.T) {
	svc := newMessageService(t)

	message := &entity.ContactMessage{
		Name:    "Abel",
		Email:   "abel@example.com",
		Subject: "Catering",
		Message: "Do you cater events?",
		IsRead:  true, // clients cannot pre-mark their mail as read
	}
	require.NoError(t, svc.Submit(message))
	assert.False(t, message.IsRead)
}

func TestMessageSubmitRequiredFields(t *testing.T) {
	svc := newMessageService(t)

	require.EqualError(t, svc.Submit(&entity.ContactMessage{Email: "a@b.c", Message: "x"}), "name is required")
	require.EqualError(t, svc.Submit(&entity.ContactMessage{Name: "A", Message: "x"}), "email is required")
	require.EqualError(t, svc.Submit(&entity.ContactMessage{Name: "A", Email: "a@b.c"}), "message is required")

	messages, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageMarkReadAndDelete(t *testing.T) {
	svc := newMessageService(t)

	message := &entity.ContactMessage{Name: "A", Email: "a@b.c", Message: "hi"}
	require.NoError(t, svc.Submit(message))

	require.NoError(t, svc.MarkRead(message.ID))
	messages, err := svc.List()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)

	require.NoError(t, svc.Delete(message.ID))
	messages, err = svc.List()
	require.NoError(t, err)
	assert.Empty(t, messages)
}
