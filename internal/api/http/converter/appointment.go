package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

type AppointmentResponse struct {
	ID                 uuid.UUID        `json:"id"`
	UserID             *uuid.UUID       `json:"user_id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone,omitempty"`
	AppointmentTime    time.Time        `json:"appointment_time"`
	CollaborationTopic string           `json:"collaboration_topic,omitempty"`
	User               *AccountResponse `json:"user,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func AppointmentToApi(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		Name:               a.Name,
		Email:              a.Email,
		Phone:              a.Phone,
		AppointmentTime:    a.AppointmentTime,
		CollaborationTopic: a.CollaborationTopic,
		User:               AccountToApi(a.User),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func AppointmentsToApi(appts []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		result = append(result, AppointmentToApi(a))
	}
	return result
}
