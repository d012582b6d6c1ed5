package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type MessageController struct {
	Service *services.MessageService
}

func NewMessageController(service *services.MessageService) *MessageController {
	return &MessageController{Service: service}
}

// POST /contact (public)
func (ctl *MessageController) Submit(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	message := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := ctl.Service.Submit(message); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"message": "message sent"})
}

// GET /admin/messages
func (ctl *MessageController) List(c *gin.Context) {
	messages, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": messages})
}

// PATCH /admin/messages/:id/read
func (ctl *MessageController) MarkRead(c *gin.Context) {
	if err := ctl.Service.MarkRead(paramID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "marked as read"})
}

// DELETE /admin/messages/:id?confirm=true
func (ctl *MessageController) Delete(c *gin.Context) {
	id := paramID(c)
	if deleteWithConfirm(c, id, func() error { return ctl.Service.Delete(id) }) {
		resp.OK(c, gin.H{"message": "message deleted"})
	}
}
