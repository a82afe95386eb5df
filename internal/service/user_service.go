package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const maxUsernameLength = 150

// UserService локальная проекция внешнего провайдера идентичности: хранит пользователей, на которых
// ссылаются счета, участники и платежи.
type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
}

func NewUserService(u uow.UOW) (*UserService, error) {
	userRepo, userRepoErr := poolRepo[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
	}, nil
}

// Register создает пользователя. Если юзернейм занят, вернется ошибка domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("registering user: %w", domain.NewValidationError("username", "must not be empty"))
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, fmt.Errorf("registering user: %w", domain.NewValidationError("username", "is too long"))
	}

	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{Username: username})
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}
