package model

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:32;not null;default:user"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Appointment struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             *uuid.UUID `gorm:"type:uuid;index"`
	Name               string     `gorm:"size:255;not null"`
	Email              string     `gorm:"size:255;not null"`
	Phone              string     `gorm:"size:20"`
	AppointmentTime    time.Time  `gorm:"not null"`
	CollaborationTopic string     `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"not null;index"`
	UpdatedAt          time.Time  `gorm:"not null"`
	User               *Account   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Video struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"size:255;not null"`
	URL         string    `gorm:"type:text;not null"`
	Type        string    `gorm:"size:32;not null;index"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type SiteContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Section   string    `gorm:"size:64;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	Body      string    `gorm:"type:text"`
	ImageURL  string    `gorm:"type:text"`
	Published bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
