package usecase

import (
	"context"
	"errors"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentDateRequired     = errors.New("please select a date")
	ErrAppointmentDateInvalid      = errors.New("appointment date must be formatted as YYYY-MM-DD")
	ErrAppointmentDateInPast       = errors.New("appointment date must be after today")
	ErrConsultationModeUnavailable = errors.New("doctor does not offer this consultation mode")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log       *logrus.Logger
	directory DoctorDirectoryUsecase
	now       func() time.Time
}

func NewAppointmentUsecase(log *logrus.Logger, directory DoctorDirectoryUsecase) AppointmentUsecase {
	return &appointmentUsecase{
		log:       log,
		directory: directory,
		now:       time.Now,
	}
}

// BookAppointment validates a booking against the loaded directory and returns a
// confirmation. Nothing is stored.
//
// Flow:
// 1. Parse the date and require it to be after today
// 2. Look the doctor up in the loaded directory
// 3. Check the requested consultation mode, if any, is offered
// 4. Issue a confirmation reference
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if req.Date == "" {
		return nil, ErrAppointmentDateRequired
	}

	now := u.now()
	date, err := time.ParseInLocation("2006-01-02", req.Date, now.Location())
	if err != nil {
		return nil, ErrAppointmentDateInvalid
	}

	// the booking calendar only offers days strictly after today
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !date.After(today) {
		return nil, ErrAppointmentDateInPast
	}

	doctor, err := u.directory.FindDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	mode := entity.ConsultationMode(req.ConsultationMode)
	if mode != "" && !doctor.Offers(mode) {
		return nil, ErrConsultationModeUnavailable
	}

	appointment := &entity.Appointment{
		Reference: uuid.NewString(),
		Doctor:    *doctor,
		Date:      date,
		Mode:      mode,
	}

	u.log.Infof("Appointment booked: reference=%s, doctor=%d, date=%s", appointment.Reference, doctor.ID, req.Date)
	return converter.AppointmentToResponse(appointment), nil
}
