package services

import (
	"context"
	"log"
	"strings"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*resp.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*resp.AccountLoginResponse, error)
	GetAccountById(ctx context.Context, id string) (*resp.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) (*resp.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.DisplayName) == "" || req.Password == "" {
		return nil, utils.ErrInvalidInput
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
		IsPrivate:    req.IsPrivate,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("failed to insert account for %s: %v", email, err)
		return nil, utils.ErrDatabaseError
	}

	return toAccountResponse(account), nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*resp.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		log.Printf("failed to sign token for %s: %v", account.Email, err)
		return nil, utils.ErrDatabaseError
	}

	return &resp.AccountLoginResponse{Token: token}, nil
}

func (a *AccountService) GetAccountById(ctx context.Context, id string) (*resp.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(account *db_models.Account) *resp.AccountResponse {
	return &resp.AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		IsPrivate: account.IsPrivate,
	}
}
