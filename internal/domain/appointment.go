package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booking request submitted from the public site. UserID is
// set when the visitor was logged in, otherwise the appointment is anonymous.
type Appointment struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             *uuid.UUID `json:"user_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone,omitempty"`
	AppointmentTime    time.Time  `json:"appointment_time"`
	CollaborationTopic string     `json:"collaboration_topic,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// User is the owning account, populated on reads when UserID is set.
	User *Account `json:"user,omitempty"`
}

func NewAppointment(userID *uuid.UUID, name, email, phone string, at time.Time, topic string) *Appointment {
	now := time.Now().UTC()
	return &Appointment{
		ID:                 uuid.New(),
		UserID:             userID,
		Name:               name,
		Email:              email,
		Phone:              phone,
		AppointmentTime:    at,
		CollaborationTopic: topic,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
