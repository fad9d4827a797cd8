package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

func newAppointmentFixture(t *testing.T) (*service.AppointmentService, *service.AccountService) {
	t.Helper()
	accounts := repository.NewInMemoryAccountRepository()
	appointments := repository.NewInMemoryAppointmentRepository(accounts)
	accounts.AttachAppointments(appointments)
	return service.NewAppointmentService(appointments, accounts, nil),
		service.NewAccountService(accounts, nil)
}

func validAppointmentParams() service.CreateAppointmentParams {
	return service.CreateAppointmentParams{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		Phone:              "555-0101",
		AppointmentTime:    "2026-09-01T10:00:00Z",
		CollaborationTopic: "Video production",
	}
}

func TestCreateAppointmentRoundTrip(t *testing.T) {
	svc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validAppointmentParams())
	require.NoError(t, err)

	got, err := svc.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "555-0101", got.Phone)
	assert.Equal(t, "Video production", got.CollaborationTopic)
	assert.True(t, got.AppointmentTime.Equal(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.CreateAppointmentParams)
		field  string
	}{
		{"missing name", func(p *service.CreateAppointmentParams) { p.Name = "" }, "name"},
		{"missing email", func(p *service.CreateAppointmentParams) { p.Email = "" }, "email"},
		{"malformed email", func(p *service.CreateAppointmentParams) { p.Email = "nope" }, "email"},
		{"missing time", func(p *service.CreateAppointmentParams) { p.AppointmentTime = "" }, "appointment_time"},
		{"unparseable time", func(p *service.CreateAppointmentParams) { p.AppointmentTime = "someday" }, "appointment_time"},
		{"malformed user id", func(p *service.CreateAppointmentParams) { p.UserID = "12" }, "user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validAppointmentParams()
			tt.mutate(&params)
			_, err := svc.CreateAppointment(ctx, params)
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestCreateAppointmentUnknownUser(t *testing.T) {
	svc, _ := newAppointmentFixture(t)

	params := validAppointmentParams()
	params.UserID = uuid.New().String()

	_, err := svc.CreateAppointment(context.Background(), params)
	requireValidationError(t, err, "user_id")
}

func TestCreateAppointmentJoinsAccount(t *testing.T) {
	svc, accountSvc := newAppointmentFixture(t)
	ctx := context.Background()

	account, err := accountSvc.CreateAccount(ctx, validAccountParams())
	require.NoError(t, err)

	params := validAppointmentParams()
	params.UserID = account.ID.String()

	appt, err := svc.CreateAppointment(ctx, params)
	require.NoError(t, err)

	got, err := svc.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, account.ID, got.User.ID)
}

func TestListAppointmentsNewestSubmittedFirst(t *testing.T) {
	svc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	// submitted later but scheduled earlier; list order must follow
	// submission, not the schedule
	first := validAppointmentParams()
	first.Name = "First Submitted"
	first.AppointmentTime = "2026-12-24T09:00:00Z"
	_, err := svc.CreateAppointment(ctx, first)
	require.NoError(t, err)

	second := validAppointmentParams()
	second.Name = "Second Submitted"
	second.AppointmentTime = "2026-01-05T09:00:00Z"
	_, err = svc.CreateAppointment(ctx, second)
	require.NoError(t, err)

	appts, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "Second Submitted", appts[0].Name)
	assert.Equal(t, "First Submitted", appts[1].Name)
}

func TestUpdateAppointmentPartial(t *testing.T) {
	svc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validAppointmentParams())
	require.NoError(t, err)

	topic := "Podcast interview"
	updated, err := svc.UpdateAppointment(ctx, appt.ID, service.UpdateAppointmentParams{CollaborationTopic: &topic})
	require.NoError(t, err)

	assert.Equal(t, "Podcast interview", updated.CollaborationTopic)
	assert.Equal(t, appt.Name, updated.Name)
	assert.True(t, updated.AppointmentTime.Equal(appt.AppointmentTime))

	badEmail := "nope"
	_, err = svc.UpdateAppointment(ctx, appt.ID, service.UpdateAppointmentParams{Email: &badEmail})
	requireValidationError(t, err, "email")
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	svc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	appt, err := svc.CreateAppointment(ctx, validAppointmentParams())
	require.NoError(t, err)

	err = svc.DeleteAppointment(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrAppointmentNotFound))

	// nothing was deleted on the missing-id path
	appts, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, 1)

	require.NoError(t, svc.DeleteAppointment(ctx, appt.ID))
	err = svc.DeleteAppointment(ctx, appt.ID)
	assert.True(t, errors.Is(err, repository.ErrAppointmentNotFound))
}
