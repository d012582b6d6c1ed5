package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
	"github.com/tsionbantegize16/woinucoffee-web-design/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "email and password are required")
		return
	}

	token, admin, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "admin": admin})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	admin, err := ctl.Service.GetProfile(utils.CurrentAdminID(c))
	if err != nil {
		resp.Unauthorized(c, "session not found")
		return
	}
	resp.OK(c, admin)
}

// PATCH /auth/password
func (ctl *AuthController) UpdatePassword(c *gin.Context) {
	var req struct {
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "new password is required")
		return
	}

	if err := ctl.Service.UpdatePassword(utils.CurrentAdminID(c), req.NewPassword); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

// POST /auth/logout
// Sessions are stateless tokens; the client discards its copy. The endpoint
// exists so sign-out has somewhere to land.
func (ctl *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "signed out"})
}
