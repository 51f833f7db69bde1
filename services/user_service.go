package services

import (
	"errors"
	"time"

	"github.com/pmhours/pmhours-go/dto"
	"github.com/pmhours/pmhours-go/middleware"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) Register(input dto.CreateUserInput) (models.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     string(models.UserRoleTester),
		Status:   string(models.UserStatusActive),
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := s.Repos.User.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(input dto.LoginInput) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, user.Role, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
