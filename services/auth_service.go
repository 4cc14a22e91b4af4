package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"preorder/entity"
	"preorder/pkg/apperr"
	"preorder/repository"
	"preorder/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService ออก token ให้ผู้ใช้ เพื่อผูก order กับเจ้าของ และกันหน้า admin
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a student account. Staff accounts come from the admin seed only.
func (s *AuthService) Register(ctx context.Context, email, password, name, studentID string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		Name:      strings.TrimSpace(name),
		StudentID: strings.TrimSpace(studentID),
		Role:      entity.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
