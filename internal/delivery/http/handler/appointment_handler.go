package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentDateRequired):
			response.Error(w, http.StatusBadRequest, "Please select a date", nil)
		case errors.Is(err, usecase.ErrAppointmentDateInvalid),
			errors.Is(err, usecase.ErrAppointmentDateInPast),
			errors.Is(err, usecase.ErrConsultationModeUnavailable):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			writeDirectoryError(w, err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment Booked!", appointment)
}
