package application

import (
	"errors"
	"time"

	"github.com/jobdesk/jobdesk-go/internal/api/middleware"
	"github.com/jobdesk/jobdesk-go/internal/domain/user"
	"github.com/jobdesk/jobdesk-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	if _, err := s.Repos.User.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := s.Repos.User.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues a signed token.
func (s *UserService) Login(input user.LoginDTO) (string, *user.User, error) {
	u, err := s.Repos.User.GetByEmail(input.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Name, u.IsAdmin, tokenLifetime)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}
