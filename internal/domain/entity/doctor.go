package entity

// ConsultationMode is a way a doctor can be consulted
type ConsultationMode string

const (
	ConsultationVideo    ConsultationMode = "Video Consult"
	ConsultationInClinic ConsultationMode = "In Clinic"
)

// DefaultRating is used for every doctor because the provider feed has no ratings
const DefaultRating = 4.5

// IsValid reports whether m is one of the known consultation modes
func (m ConsultationMode) IsValid() bool {
	return m == ConsultationVideo || m == ConsultationInClinic
}

// Doctor is the normalized representation of a provider record.
// Values are treated as immutable once built by the converter.
type Doctor struct {
	ID               int                `json:"id"`
	Name             string             `json:"name"`
	Specialty        []string           `json:"specialty"`
	Experience       int                `json:"experience"`
	Fee              int                `json:"fee"`
	Ratings          float64            `json:"ratings"`
	Address          string             `json:"address"`
	ClinicName       string             `json:"clinic_name"`
	Place            string             `json:"place"`
	ConsultationMode []ConsultationMode `json:"consultation_mode"`
}

// Offers checks if the doctor supports the given consultation mode
func (d *Doctor) Offers(mode ConsultationMode) bool {
	for _, m := range d.ConsultationMode {
		if m == mode {
			return true
		}
	}
	return false
}

// HasAnySpecialty checks if the doctor has at least one of the given specialties
func (d *Doctor) HasAnySpecialty(specialties []string) bool {
	for _, s := range d.Specialty {
		for _, want := range specialties {
			if s == want {
				return true
			}
		}
	}
	return false
}
