package service

import (
	"context"
	"errors"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/repository"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (user domain.User, err error)
	SeedAdmin(ctx context.Context, email, password string) (err error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func CreateUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.LoginRequest) (user domain.User, err error) {
	user, err = s.repo.GetUserByEmail(ctx, *payload.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return user, errs.New(errs.ErrNotFound, "User not found")
		}
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(*payload.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return domain.User{}, errs.New(errs.ErrUnauthorized, "Invalid email or password")
	}

	return user, nil
}

// SeedAdmin creates the admin login when it does not exist yet.
func (s *UserServiceImpl) SeedAdmin(ctx context.Context, email, password string) (err error) {
	if email == "" || password == "" {
		return nil
	}

	_, err = s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.AddUser(ctx, domain.User{Email: email, HashedPassword: string(hash)})
	if err != nil && !errors.Is(err, errs.ErrDuplicate) {
		return err
	}

	log.Ctx(ctx).Info().Str("component", "SeedAdmin").Str("email", email).Msg("admin user ready")

	return nil
}
