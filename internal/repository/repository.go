package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailTaken          = errors.New("account with email already exists")
	ErrContactNotFound     = errors.New("contact message not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrVideoNotFound       = errors.New("video not found")
	ErrContentNotFound     = errors.New("content not found")
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	// Delete removes the account and every appointment referencing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	// List returns appointments newest-submitted-first (created_at desc),
	// each joined with its owning account when user_id is set.
	List(ctx context.Context) ([]*domain.Appointment, error)
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	List(ctx context.Context) ([]*domain.Video, error)
	ListByType(ctx context.Context, videoType string) ([]*domain.Video, error)
	// Search matches query case-insensitively against title or description,
	// newest-first.
	Search(ctx context.Context, query string) ([]*domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SiteContentRepository interface {
	Create(ctx context.Context, content *domain.SiteContent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SiteContent, error)
	List(ctx context.Context) ([]*domain.SiteContent, error)
	ListPublished(ctx context.Context) ([]*domain.SiteContent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
