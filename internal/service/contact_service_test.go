package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

func newContactService(t *testing.T) *service.ContactService {
	t.Helper()
	return service.NewContactService(repository.NewInMemoryContactRepository(), nil)
}

func TestCreateContactMessage(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	msg, err := svc.CreateMessage(ctx, service.CreateContactParams{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Love the portfolio, let's talk.",
	})
	require.NoError(t, err)

	got, err := svc.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Love the portfolio, let's talk.", got.Message)
}

func TestCreateContactMessageValidation(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		params service.CreateContactParams
		field  string
	}{
		{"missing name", service.CreateContactParams{Email: "jane@example.com", Message: "hi"}, "name"},
		{"missing email", service.CreateContactParams{Name: "Jane", Message: "hi"}, "email"},
		{"malformed email", service.CreateContactParams{Name: "Jane", Email: "nope", Message: "hi"}, "email"},
		{"missing message", service.CreateContactParams{Name: "Jane", Email: "jane@example.com"}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMessage(ctx, tt.params)
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestDeleteContactMessage(t *testing.T) {
	svc := newContactService(t)
	ctx := context.Background()

	msg, err := svc.CreateMessage(ctx, service.CreateContactParams{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMessage(ctx, msg.ID))

	err = svc.DeleteMessage(ctx, msg.ID)
	assert.True(t, errors.Is(err, repository.ErrContactNotFound))

	err = svc.DeleteMessage(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrContactNotFound))
}
