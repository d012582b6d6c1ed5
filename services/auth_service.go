package services

import (
	"errors"
	"strings"
	"time"

	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService signs admins in and manages their credentials.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks credentials and mints a session token.
func (s *AuthService) Login(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, admin, nil
}

func (s *AuthService) GetProfile(adminID uint) (*entity.Admin, error) {
	return s.adminRepo.FindByID(adminID)
}

// UpdatePassword replaces the admin's password.
func (s *AuthService) UpdatePassword(adminID uint, newPassword string) error {
	if len(newPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.adminRepo.UpdatePassword(adminID, string(hashed))
}
