package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
)

const (
	fetchFailedMessage = "Failed to fetch doctors. Please try again later."
	reloadTimeout      = 30 * time.Second
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// SearchDoctors serves the filtered, sorted list for the filter in the query string
func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := converter.QueryToFilterDTO(r.URL.Query())
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.SearchDoctors(r.Context(), converter.FilterDTOToEntity(&query))
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// ChangeFilter applies one filter change to the submitted filter and returns the new results
func (h *DoctorHandler) ChangeFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	update, err := converter.FilterChangeToUpdate(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	doctors, err := h.directoryUsecase.ApplyFilterChange(r.Context(), converter.FilterDTOToEntity(&req.Filter), update)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Filter applied successfully", doctors)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.directoryUsecase.GetSuggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Directory status retrieved successfully", h.directoryUsecase.Status(r.Context()))
}

// Reload is the retry action: it fetches the doctor list again
func (h *DoctorHandler) Reload(w http.ResponseWriter, r *http.Request) {
	// the directory is shared, so a client going away must not abort its load
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), reloadTimeout)
	defer cancel()

	err := h.directoryUsecase.Reload(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrLoadSuperseded) {
			response.Error(w, http.StatusConflict, "Reload superseded by a newer request", nil)
			return
		}
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctors reloaded successfully", h.directoryUsecase.Status(r.Context()))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeDirectoryError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// writeDirectoryError maps directory usecase errors to responses
func writeDirectoryError(w http.ResponseWriter, err error) {
	var fetchErr *entity.FetchError
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrDirectoryLoading):
		response.ServiceUnavailable(w, "Doctors are still loading")
	case errors.As(err, &fetchErr), errors.Is(err, usecase.ErrDirectoryUnavailable):
		response.BadGateway(w, fetchFailedMessage, nil)
	default:
		response.InternalServerError(w, "Failed to get doctors")
	}
}
