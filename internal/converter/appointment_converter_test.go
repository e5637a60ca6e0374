package converter

import (
	"testing"
	"time"

	"go-doctor-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLongDate(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "October 1st, 2026"},
		{2, "October 2nd, 2026"},
		{3, "October 3rd, 2026"},
		{4, "October 4th, 2026"},
		{11, "October 11th, 2026"},
		{12, "October 12th, 2026"},
		{13, "October 13th, 2026"},
		{21, "October 21st, 2026"},
		{22, "October 22nd, 2026"},
		{31, "October 31st, 2026"},
	}

	for _, tt := range tests {
		date := time.Date(2026, time.October, tt.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, LongDate(date))
	}
}

func TestAppointmentToResponse(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))

	resp := AppointmentToResponse(&entity.Appointment{
		Reference: "ref-1",
		Doctor:    entity.Doctor{ID: 7, Name: "Asha Rao"},
		Date:      time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC),
		Mode:      entity.ConsultationVideo,
	})

	assert.Equal(t, "ref-1", resp.Reference)
	assert.Equal(t, 7, resp.Doctor.ID)
	assert.Equal(t, "2026-10-20", resp.Date)
	assert.Equal(t, "Video Consult", resp.ConsultationMode)
	assert.Equal(t, "Your appointment with Dr. Asha Rao is scheduled for October 20th, 2026", resp.Message)
}
