package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbm "tripplanner/internal/models/db_models"
	req "tripplanner/internal/models/request_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error)
	CreateAccount(ctx context.Context, request req.SignUpRequest) (*resp.AccountResponse, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*resp.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenManager) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (a *AccountService) Login(ctx context.Context, request req.LoginRequest) (*resp.LoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expires, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"took":       time.Since(startTime).String(),
	}).Info("login succeeded")

	return &resp.LoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339(expires),
		Account:   toAccountResponse(account),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request req.SignUpRequest) (*resp.AccountResponse, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &dbm.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.WrapDatabaseError(err)
	}

	out := toAccountResponse(newAccount)
	return &out, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*resp.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := toAccountResponse(account)
	return &out, nil
}
