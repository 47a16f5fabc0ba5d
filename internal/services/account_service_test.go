package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripwise/internal/models/request_models"
	"tripwise/pkg/utils"
)

func signUpRequest() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		DisplayName: "Sam Porter",
		Email:       "sam@example.com",
		Password:    "hunter22",
	}
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	account, err := svc.CreateAccount(ctx, signUpRequest())
	require.NoError(t, err)
	assert.Equal(t, "Sam Porter", account.Name)
	assert.Equal(t, "sam@example.com", account.Email)
	assert.NotEmpty(t, account.ID)

	// The stored credential is a hash, never the plaintext.
	stored := repo.accounts[account.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "hunter22"))
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, signUpRequest())
	require.NoError(t, err)

	// Same address with different casing still collides.
	req := signUpRequest()
	req.Email = "SAM@Example.com"
	_, err = svc.CreateAccount(ctx, req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAccountService(newFakeAccountRepo())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, signUpRequest())
	require.NoError(t, err)

	token, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	_, err = svc.Login(ctx, request_models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetAccountById(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, signUpRequest())
	require.NoError(t, err)

	account, err := svc.GetAccountById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, account.Email)

	_, err = svc.GetAccountById(ctx, "missing-id")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
