package converter

import (
	"fmt"
	"time"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

const appointmentDateLayout = "2006-01-02"

// AppointmentToResponse converts a confirmed appointment to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		Reference:        appointment.Reference,
		Doctor:           *DoctorToResponse(&appointment.Doctor),
		Date:             appointment.Date.Format(appointmentDateLayout),
		ConsultationMode: string(appointment.Mode),
		Message: fmt.Sprintf("Your appointment with Dr. %s is scheduled for %s",
			appointment.Doctor.Name, LongDate(appointment.Date)),
	}
}

// LongDate formats t like "October 19th, 2026"
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
