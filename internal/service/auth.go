package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/crypto/bcrypt"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository"
)

const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	ErrUserExists    = repository.ErrUserExists
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrWrongPassword = errors.New("wrong password")
	ErrWeakPassword  = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
}

type AuthService struct {
	repo   AuthUserRepository
	policy QueryPolicy
}

func NewAuthService(repo AuthUserRepository, policy QueryPolicy) *AuthService {
	return &AuthService{
		repo:   repo,
		policy: policy,
	}
}

// CreateUser stores a new account with a bcrypt hash of its password.
func (s *AuthService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	user.Name = strings.TrimSpace(user.Name)
	if user.ID == "" || user.Name == "" {
		return domain.User{}, fmt.Errorf("%w: id and nome are required", ErrInvalidRequest)
	}
	if user.Role == "" {
		user.Role = domain.RoleAdmin
	}

	if err := CheckPassword(user.Password); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	user.Password = string(hash)

	created, err := writeOnce(ctx, s.policy, func(ctx context.Context) (domain.User, error) {
		return s.repo.Create(ctx, user)
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, id, password string) (domain.User, error) {
	user, err := readWithRetry(ctx, s.policy, func(ctx context.Context) (domain.User, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// CheckPassword enforces the password policy: 8+ characters with at least one letter and one digit.
func CheckPassword(password string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil {
		return fmt.Errorf("passwordExp.MatchString -> %w", err)
	}
	if !ok {
		return ErrWeakPassword
	}

	return nil
}
