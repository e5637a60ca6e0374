package usecase

import (
	"context"
	"testing"
	"time"

	"go-doctor-directory/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppointmentUsecase(t *testing.T, directory DoctorDirectoryUsecase) *appointmentUsecase {
	t.Helper()
	u := NewAppointmentUsecase(discardLogger(), directory).(*appointmentUsecase)
	u.now = func() time.Time {
		return time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)
	}
	return u
}

func TestBookAppointment(t *testing.T) {
	u := newTestAppointmentUsecase(t, newLoadedDirectory(t))

	resp, err := u.BookAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:         1,
		Date:             "2026-10-20",
		ConsultationMode: "Video Consult",
	})

	require.NoError(t, err)
	_, err = uuid.Parse(resp.Reference)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Doctor.ID)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "Video Consult", resp.ConsultationMode)
	assert.Equal(t, "Your appointment with Dr. Dr. Asha Rao is scheduled for October 20th, 2026", resp.Message)
}

func TestBookAppointmentWithoutMode(t *testing.T) {
	u := newTestAppointmentUsecase(t, newLoadedDirectory(t))

	resp, err := u.BookAppointment(context.Background(), &dto.CreateAppointmentRequest{DoctorID: 2, Date: "2027-01-01"})

	require.NoError(t, err)
	assert.Empty(t, resp.ConsultationMode)
}

func TestBookAppointmentErrors(t *testing.T) {
	u := newTestAppointmentUsecase(t, newLoadedDirectory(t))

	tests := []struct {
		name string
		req  dto.CreateAppointmentRequest
		want error
	}{
		{"missing date", dto.CreateAppointmentRequest{DoctorID: 1}, ErrAppointmentDateRequired},
		{"malformed date", dto.CreateAppointmentRequest{DoctorID: 1, Date: "20/10/2026"}, ErrAppointmentDateInvalid},
		{"today", dto.CreateAppointmentRequest{DoctorID: 1, Date: "2026-10-19"}, ErrAppointmentDateInPast},
		{"past", dto.CreateAppointmentRequest{DoctorID: 1, Date: "2025-12-31"}, ErrAppointmentDateInPast},
		{"unknown doctor", dto.CreateAppointmentRequest{DoctorID: 42, Date: "2026-10-20"}, ErrDoctorNotFound},
		{"mode not offered", dto.CreateAppointmentRequest{DoctorID: 2, Date: "2026-10-20", ConsultationMode: "Video Consult"}, ErrConsultationModeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.BookAppointment(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookAppointmentBeforeDirectoryLoads(t *testing.T) {
	directory := NewDoctorDirectoryUsecase(discardLogger(), &fakeDoctorRepository{}, nil)
	u := newTestAppointmentUsecase(t, directory)

	_, err := u.BookAppointment(context.Background(), &dto.CreateAppointmentRequest{DoctorID: 1, Date: "2026-10-20"})

	assert.ErrorIs(t, err, ErrDirectoryLoading)
}
