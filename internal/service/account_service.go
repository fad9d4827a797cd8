package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/auth"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

const minPasswordLength = 6

type CreateAccountParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

func (p CreateAccountParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if p.Email == "" {
		fields.Add("email", "The email field is required.")
	} else if !validation.ValidEmail(p.Email) {
		fields.Add("email", "The email must be a valid email address.")
	}
	if p.Password == "" {
		fields.Add("password", "The password field is required.")
	} else if len(p.Password) < minPasswordLength {
		fields.Add("password", "The password must be at least 6 characters.")
	} else if p.Password != p.PasswordConfirmation {
		fields.Add("password", "The password confirmation does not match.")
	}
	if p.Role != "" && !domain.ValidRole(p.Role) {
		fields.Add("role", "The selected role is invalid.")
	}
	return fields
}

type UpdateAccountParams struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func (p UpdateAccountParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Name != nil && *p.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if p.Email != nil && !validation.ValidEmail(*p.Email) {
		fields.Add("email", "The email must be a valid email address.")
	}
	if p.Role != nil && !domain.ValidRole(*p.Role) {
		fields.Add("role", "The selected role is invalid.")
	}
	if p.Password != nil && len(*p.Password) < minPasswordLength {
		fields.Add("password", "The password must be at least 6 characters.")
	}
	return fields
}

type AccountService struct {
	accounts repository.AccountRepository
	log      *slog.Logger
}

func NewAccountService(accounts repository.AccountRepository, log *slog.Logger) *AccountService {
	if log == nil {
		log = slog.Default()
	}
	return &AccountService{accounts: accounts, log: log}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *AccountService) CreateAccount(ctx context.Context, params CreateAccountParams) (*domain.Account, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	if _, err := s.accounts.GetByEmail(ctx, params.Email); err == nil {
		fields.Add("email", "The email has already been taken.")
		return nil, validationFailed(fields)
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	account := domain.NewAccount(params.Name, params.Email, hash, params.Role)
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			fields.Add("email", "The email has already been taken.")
			return nil, validationFailed(fields)
		}
		return nil, err
	}

	s.log.Info("account registered", "account_id", account.ID.String(), "role", account.Role)
	return account, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*domain.Account, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		account.Name = *params.Name
	}
	if params.Email != nil && *params.Email != account.Email {
		if _, err := s.accounts.GetByEmail(ctx, *params.Email); err == nil {
			fields.Add("email", "The email has already been taken.")
			return nil, validationFailed(fields)
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return nil, err
		}
		account.Email = *params.Email
	}
	if params.Role != nil {
		account.Role = *params.Role
	}
	if params.Password != nil {
		hash, err := auth.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			fields.Add("email", "The email has already been taken.")
			return nil, validationFailed(fields)
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("account deleted", "account_id", id.String())
	return nil
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(account.PasswordHash, password) {
		s.log.Warn("login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
