package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/service"
)

func TestAuthService_CreateUserAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.auth.CreateUser(ctx, domain.User{ID: "admin01", Name: "Maria", Password: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.NotEqual(t, "segredo123", created.Password)

	_, err = f.auth.CreateUser(ctx, domain.User{ID: "admin01", Name: "Maria", Password: "segredo123"})
	require.ErrorIs(t, err, service.ErrUserExists)

	user, err := f.auth.Login(ctx, "admin01", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, "admin01", user.ID)

	_, err = f.auth.Login(ctx, "admin01", "errada123")
	require.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = f.auth.Login(ctx, "nobody", "segredo123")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{password: "segredo123", valid: true},
		{password: "a1b2c3d4", valid: true},
		{password: "short1", valid: false},
		{password: "onlyletters", valid: false},
		{password: "1234567890", valid: false},
		{password: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.CheckPassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, service.ErrWeakPassword)
			}
		})
	}
}
