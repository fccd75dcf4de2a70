package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/hduce/appointment-notify/internal/api/dto"
	"github.com/hduce/appointment-notify/internal/api/respond"
	"github.com/hduce/appointment-notify/internal/model"
	"github.com/hduce/appointment-notify/internal/repository/appointment"
)

type appointmentService interface {
	CreateAppointment(ctx context.Context, a model.Appointment) (model.Appointment, error)
	GetAppointmentByID(ctx context.Context, id int64) (model.Appointment, error)
}

// Handler serves the appointment service REST surface.
type Handler struct {
	service   appointmentService
	validator *validator.Validate
}

func NewHandler(s appointmentService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create handles POST /api/appointments/.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateAppointmentRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), model.Appointment{
		PatientID:       req.PatientID,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("patient_id", req.PatientID).Msg("failed to create appointment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// Get handles GET /api/appointments/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	a, err := h.service.GetAppointmentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("appointment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to get appointment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, a)
}
