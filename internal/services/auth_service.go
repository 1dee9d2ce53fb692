package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
	"fitcore/internal/models/request_models"
	"fitcore/internal/models/response_models"
	"fitcore/internal/repositories"
	mem "fitcore/pkg/memcache"
	"fitcore/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.SignUpResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AuthService struct {
	accountRepo repositories.AccountRepository
	jwtManager  *utils.JWTManager
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AuthServiceInterface {
	return &AuthService{
		accountRepo: accountRepo,
		jwtManager:  jwtManager,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.SignUpResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		// A racing signup with the same email loses on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SignUpResponse{AccountID: account.ID}, nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwtManager.CreateToken(account.ID, account.Email)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token, AccountID: account.ID}, nil
}

// ForgotPassword never reveals whether the email is registered.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendResetPassword(account.Email, token); err != nil {
		log.Error().Err(err).Str("email", account.Email).Msg("reset mail failed")
	}

	return nil
}

// ResetPassword consumes the token only after the password write lands, so
// a transient store failure does not burn the link.
func (a *AuthService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email, ok := a.resetTokens.Peek(request.Token)
	if !ok {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Consume(request.Token)
	return nil
}
