package dto

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID         int    `json:"doctor_id" validate:"required,min=1"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	ConsultationMode string `json:"consultation_mode" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
}

// Response DTOs

type AppointmentResponse struct {
	Reference        string         `json:"reference"`
	Doctor           DoctorResponse `json:"doctor"`
	Date             string         `json:"date"`
	ConsultationMode string         `json:"consultation_mode,omitempty"`
	Message          string         `json:"message"`
}
