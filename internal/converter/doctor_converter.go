package converter

import (
	"strconv"
	"strings"
	"unicode"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// ProviderRecordToDoctor converts a raw provider record to a normalized Doctor.
// Unparseable experience and fee values default to 0.
func ProviderRecordToDoctor(record *entity.ProviderRecord) entity.Doctor {
	doctor := entity.Doctor{
		ID:               int(record.ID),
		Name:             record.Name.String(),
		Specialty:        make([]string, 0, len(record.Specialities)),
		Experience:       parseLeadingInt(record.Experience.String()),
		Fee:              parseDigits(record.Fees.String()),
		Ratings:          entity.DefaultRating,
		ConsultationMode: make([]entity.ConsultationMode, 0, 2),
	}

	for _, s := range record.Specialities {
		doctor.Specialty = append(doctor.Specialty, s.Name.String())
	}

	if record.VideoConsult {
		doctor.ConsultationMode = append(doctor.ConsultationMode, entity.ConsultationVideo)
	}
	if record.InClinic {
		doctor.ConsultationMode = append(doctor.ConsultationMode, entity.ConsultationInClinic)
	}

	var locality, city string
	if record.Clinic != nil {
		doctor.ClinicName = record.Clinic.Name.String()
		if addr := record.Clinic.Address; addr != nil {
			doctor.Address = addr.AddressLine1.String()
			locality = addr.Locality.String()
			city = addr.City.String()
		}
	}
	doctor.Place = locality + ", " + city

	return doctor
}

// ProviderRecordsToDoctors converts raw provider records one-to-one, preserving order
func ProviderRecordsToDoctors(records []entity.ProviderRecord) []entity.Doctor {
	doctors := make([]entity.Doctor, len(records))
	for i := range records {
		doctors[i] = ProviderRecordToDoctor(&records[i])
	}
	return doctors
}

// parseLeadingInt reads the integer at the start of s, e.g. "13 Years of experience" -> 13.
// Negative and missing values yield 0.
func parseLeadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseDigits drops every non-digit character and parses the rest, e.g. "₹ 1,500" -> 1500
func parseDigits(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	modes := make([]string, len(doctor.ConsultationMode))
	for i, m := range doctor.ConsultationMode {
		modes[i] = string(m)
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialty:        append([]string{}, doctor.Specialty...),
		Experience:       doctor.Experience,
		Fee:              doctor.Fee,
		Ratings:          doctor.Ratings,
		Address:          doctor.Address,
		ClinicName:       doctor.ClinicName,
		Place:            doctor.Place,
		ConsultationMode: modes,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
