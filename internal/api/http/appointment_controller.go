package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/api/http/converter"
	"github.com/sohanurdev/portfolio-backend/internal/repository"
	"github.com/sohanurdev/portfolio-backend/internal/service"
)

type AppointmentController struct {
	appointments service.AppointmentInteractor
}

func NewAppointmentController(appointments service.AppointmentInteractor) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

func (c *AppointmentController) CreateAppointment(ctx *gin.Context) {
	var params service.CreateAppointmentParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	appt, err := c.appointments.CreateAppointment(ctx.Request.Context(), params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusCreated, "Appointment booked successfully!", converter.AppointmentToApi(appt))
}

// ListAppointments is ordered by submission time, newest first. The client
// shows the booking queue, not a calendar.
func (c *AppointmentController) ListAppointments(ctx *gin.Context) {
	appts, err := c.appointments.ListAppointments(ctx.Request.Context())
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", converter.AppointmentsToApi(appts))
}

func (c *AppointmentController) GetAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "Appointment not found", nil)
		return
	}

	appt, err := c.appointments.GetAppointment(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "", converter.AppointmentToApi(appt))
}

func (c *AppointmentController) UpdateAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "Appointment not found", nil)
		return
	}

	var params service.UpdateAppointmentParams
	if err := ctx.ShouldBindJSON(&params); err != nil {
		respondStatusError(ctx, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	appt, err := c.appointments.UpdateAppointment(ctx.Request.Context(), id, params)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "Appointment updated successfully", converter.AppointmentToApi(appt))
}

func (c *AppointmentController) DeleteAppointment(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondStatusError(ctx, http.StatusNotFound, "Appointment not found", nil)
		return
	}

	if err := c.appointments.DeleteAppointment(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}
	respondStatus(ctx, http.StatusOK, "Appointment deleted successfully", nil)
}

func (c *AppointmentController) respondError(ctx *gin.Context, err error) {
	switch code := statusFor(err, repository.ErrAppointmentNotFound); code {
	case http.StatusUnprocessableEntity:
		respondStatusError(ctx, code, "Validation error", validationFields(err))
	case http.StatusNotFound:
		respondStatusError(ctx, code, "Appointment not found", nil)
	default:
		respondStatusError(ctx, code, err.Error(), nil)
	}
}
