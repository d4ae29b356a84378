package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/utils"
)

// AuthService issues and refreshes dashboard tokens.
type AuthService struct {
	Repo          *repository.AdminRepository
	Secret        string
	TTL           time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration, refreshSecret string, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		Repo:          repo,
		Secret:        secret,
		TTL:           ttl,
		RefreshSecret: refreshSecret,
		RefreshTTL:    refreshTTL,
	}
}

type LoginResult struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        *entity.Admin `json:"admin"`
}

// Login checks credentials and mints both tokens. The error is the same
// whether the username or the password is wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validationf("please provide username and password")
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	admin, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := utils.GenerateToken(admin.ID, admin.Role, s.Secret, s.TTL)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateToken(admin.ID, admin.Role, s.RefreshSecret, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: access, RefreshToken: refresh, Admin: admin}, nil
}

// Register creates another dashboard login. Admin-only at the route level.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*entity.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validationf("please provide username and password")
	}
	if role == "" {
		role = "manager"
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	count, err := s.Repo.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{Username: username, Password: string(hash), Role: role}
	if err := s.Repo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return admin, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseToken(refreshToken, s.RefreshSecret)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	admin, err := s.Repo.FindByID(ctx, claims.AdminID)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(admin.ID, admin.Role, s.Secret, s.TTL)
}
