package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

type AccountInteractor interface {
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, params CreateAccountParams) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, params UpdateAccountParams) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
}

type ContactInteractor interface {
	CreateMessage(ctx context.Context, params CreateContactParams) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type AppointmentInteractor interface {
	CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, params UpdateAppointmentParams) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type VideoInteractor interface {
	CreateVideo(ctx context.Context, params CreateVideoParams) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]*domain.Video, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, params UpdateVideoParams) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id uuid.UUID) error
	ListVideosByType(ctx context.Context, videoType string) ([]*domain.Video, error)
	SearchVideos(ctx context.Context, query string) ([]*domain.Video, error)
}

type SiteContentInteractor interface {
	CreateContent(ctx context.Context, params CreateContentParams) (*domain.SiteContent, error)
	ListContent(ctx context.Context) ([]*domain.SiteContent, error)
	ListPublishedContent(ctx context.Context) ([]*domain.SiteContent, error)
	GetContent(ctx context.Context, id uuid.UUID) (*domain.SiteContent, error)
	DeleteContent(ctx context.Context, id uuid.UUID) error
}
