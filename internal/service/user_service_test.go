package service_test

import (
	"context"
	"testing"

	"github.com/alimikegami/content-service/internal/domain"
	"github.com/alimikegami/content-service/internal/dto"
	"github.com/alimikegami/content-service/internal/service"
	"github.com/alimikegami/content-service/internal/testutil"
	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	repo := testutil.NewUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.Seed(domain.User{Email: "admin@example.com", HashedPassword: string(hash)})

	svc := service.CreateUserService(repo)

	testCases := []struct {
		Name     string
		Email    string
		Password string
		Kind     error
		Message  string
	}{
		{Name: "valid credentials", Email: "admin@example.com", Password: "s3cret"},
		{Name: "unknown email", Email: "nobody@example.com", Password: "s3cret", Kind: errs.ErrNotFound, Message: "User not found"},
		{Name: "wrong password", Email: "admin@example.com", Password: "nope", Kind: errs.ErrUnauthorized, Message: "Invalid email or password"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			user, err := svc.Login(context.Background(), dto.LoginRequest{Email: ptr(tc.Email), Password: ptr(tc.Password)})
			if tc.Kind == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.Email, user.Email)
				return
			}

			assert.ErrorIs(t, err, tc.Kind)
			assert.EqualError(t, err, tc.Message)
		})
	}
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	repo := testutil.NewUserRepository()
	svc := service.CreateUserService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "admin@example.com", "s3cret"))
	require.NoError(t, svc.SeedAdmin(ctx, "admin@example.com", "other"))
	require.NoError(t, svc.SeedAdmin(ctx, "", ""))

	assert.Equal(t, 1, repo.Inserts)

	_, err := svc.Login(ctx, dto.LoginRequest{Email: ptr("admin@example.com"), Password: ptr("s3cret")})
	assert.NoError(t, err)
}
