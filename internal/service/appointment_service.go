package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/validation"
)

type CreateAppointmentParams struct {
	UserID             string `json:"user_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	AppointmentTime    string `json:"appointment_time"`
	CollaborationTopic string `json:"collaboration_topic"`
}

func (p CreateAppointmentParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if p.Email == "" {
		fields.Add("email", "The email field is required.")
	} else if !validation.ValidEmail(p.Email) {
		fields.Add("email", "The email must be a valid email address.")
	}
	if p.AppointmentTime == "" {
		fields.Add("appointment_time", "The appointment time field is required.")
	} else if _, ok := validation.ParseDatetime(p.AppointmentTime); !ok {
		fields.Add("appointment_time", "The appointment time is not a valid date.")
	}
	if p.UserID != "" {
		if _, err := uuid.Parse(p.UserID); err != nil {
			fields.Add("user_id", "The selected user id is invalid.")
		}
	}
	return fields
}

type UpdateAppointmentParams struct {
	UserID             *string `json:"user_id"`
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	AppointmentTime    *string `json:"appointment_time"`
	CollaborationTopic *string `json:"collaboration_topic"`
}

func (p UpdateAppointmentParams) validate() validation.FieldErrors {
	fields := validation.FieldErrors{}
	if p.Name != nil && *p.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if p.Email != nil && !validation.ValidEmail(*p.Email) {
		fields.Add("email", "The email must be a valid email address.")
	}
	if p.AppointmentTime != nil {
		if _, ok := validation.ParseDatetime(*p.AppointmentTime); !ok {
			fields.Add("appointment_time", "The appointment time is not a valid date.")
		}
	}
	if p.UserID != nil && *p.UserID != "" {
		if _, err := uuid.Parse(*p.UserID); err != nil {
			fields.Add("user_id", "The selected user id is invalid.")
		}
	}
	return fields
}

type AppointmentService struct {
	appointments repository.AppointmentRepository
	accounts     repository.AccountRepository
	log          *slog.Logger
}

func NewAppointmentService(appointments repository.AppointmentRepository, accounts repository.AccountRepository, log *slog.Logger) *AppointmentService {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentService{appointments: appointments, accounts: accounts, log: log}
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*domain.Appointment, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	var userID *uuid.UUID
	if params.UserID != "" {
		id, _ := uuid.Parse(params.UserID)
		if err := s.checkAccountExists(ctx, id, fields); err != nil {
			return nil, err
		}
		if !fields.Empty() {
			return nil, validationFailed(fields)
		}
		userID = &id
	}

	at, _ := validation.ParseDatetime(params.AppointmentTime)
	appt := domain.NewAppointment(userID, params.Name, params.Email, params.Phone, at, params.CollaborationTopic)
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.log.Info("appointment booked", "appointment_id", appt.ID.String())
	return appt, nil
}

func (s *AppointmentService) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uuid.UUID, params UpdateAppointmentParams) (*domain.Appointment, error) {
	fields := params.validate()
	if !fields.Empty() {
		return nil, validationFailed(fields)
	}

	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.UserID != nil {
		if *params.UserID == "" {
			appt.UserID = nil
			appt.User = nil
		} else {
			uid, _ := uuid.Parse(*params.UserID)
			if err := s.checkAccountExists(ctx, uid, fields); err != nil {
				return nil, err
			}
			if !fields.Empty() {
				return nil, validationFailed(fields)
			}
			appt.UserID = &uid
		}
	}
	if params.Name != nil {
		appt.Name = *params.Name
	}
	if params.Email != nil {
		appt.Email = *params.Email
	}
	if params.Phone != nil {
		appt.Phone = *params.Phone
	}
	if params.AppointmentTime != nil {
		at, _ := validation.ParseDatetime(*params.AppointmentTime)
		appt.AppointmentTime = at
	}
	if params.CollaborationTopic != nil {
		appt.CollaborationTopic = *params.CollaborationTopic
	}
	appt.UpdatedAt = time.Now().UTC()

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, id)
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *AppointmentService) checkAccountExists(ctx context.Context, id uuid.UUID, fields validation.FieldErrors) error {
	_, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			fields.Add("user_id", "The selected user id is invalid.")
			return nil
		}
		return err
	}
	return nil
}
