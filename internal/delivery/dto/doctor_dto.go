package dto

// Request DTOs

// DoctorFilterQuery mirrors the bookmarkable query string of the doctor list
type DoctorFilterQuery struct {
	Search       string   `json:"search,omitempty"`
	Consultation string   `json:"consultation,omitempty" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Specialties  []string `json:"specialties,omitempty" validate:"omitempty,dive,required"`
	Sort         string   `json:"sort,omitempty" validate:"omitempty,oneof=fees experience"`
}

// FilterChangeRequest applies one filter change to the current filter.
// Value holds a string for search/consultation/sort/toggle_specialty and a
// list of strings for specialties; clear takes no value.
type FilterChangeRequest struct {
	Filter DoctorFilterQuery `json:"filter"`
	Type   string            `json:"type" validate:"required,oneof=search consultation specialties toggle_specialty sort clear"`
	Value  FilterChangeValue `json:"value"`
}

// FilterChangeValue carries either a single string or a list of strings
type FilterChangeValue struct {
	Text string
	List []string
}

// Response DTOs

type DoctorResponse struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Specialty        []string `json:"specialty"`
	Experience       int      `json:"experience"`
	Fee              int      `json:"fee"`
	Ratings          float64  `json:"ratings"`
	Address          string   `json:"address"`
	ClinicName       string   `json:"clinic_name"`
	Place            string   `json:"place"`
	ConsultationMode []string `json:"consultation_mode"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse  `json:"doctors"`
	Total   int               `json:"total"`
	Filter  DoctorFilterQuery `json:"filter"`
	Query   string            `json:"query"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type SuggestionResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

type DirectoryStatusResponse struct {
	Status    string `json:"status"`
	Total     int    `json:"total"`
	LastError string `json:"last_error,omitempty"`
}
