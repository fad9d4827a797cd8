package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

type CreateContactParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (p CreateContactParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if p.Email == "" {
		fields.Add("email", "The email field is required.")
	} else if !validation.ValidEmail(p.Email) {
		fields.Add("email", "The email must be a valid email address.")
	}
	if p.Message == "" {
		fields.Add("message", "The message field is required.")
	}
	return fields
}

type ContactService struct {
	contacts repository.ContactRepository
	log      *slog.Logger
}

func NewContactService(contacts repository.ContactRepository, log *slog.Logger) *ContactService {
	if log == nil {
		log = slog.Default()
	}
	return &ContactService{contacts: contacts, log: log}
}

func (s *ContactService) CreateMessage(ctx context.Context, params CreateContactParams) (*domain.ContactMessage, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	msg := domain.NewContactMessage(params.Name, params.Email, params.Message)
	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info("contact message received", "contact_id", msg.ID.String())
	return msg, nil
}

func (s *ContactService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

func (s *ContactService) GetMessage(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	return s.contacts.GetByID(ctx, id)
}

func (s *ContactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}
