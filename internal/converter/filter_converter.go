package converter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// Query parameter names of the bookmarkable doctor list URL
const (
	QueryParamSearch       = "search"
	QueryParamConsultation = "consultation"
	QueryParamSpecialties  = "specialties"
	QueryParamSort         = "sort"
)

// Filter change types accepted by FilterChangeToUpdate
const (
	FilterChangeSearch          = "search"
	FilterChangeConsultation    = "consultation"
	FilterChangeSpecialties     = "specialties"
	FilterChangeToggleSpecialty = "toggle_specialty"
	FilterChangeSort            = "sort"
	FilterChangeClear           = "clear"
)

var ErrInvalidFilterChange = errors.New("invalid filter change")

// QueryToFilterDTO reads the filter from URL query parameters.
// Specialties are comma separated; empty segments are dropped.
func QueryToFilterDTO(values url.Values) dto.DoctorFilterQuery {
	return dto.DoctorFilterQuery{
		Search:       values.Get(QueryParamSearch),
		Consultation: values.Get(QueryParamConsultation),
		Specialties:  splitSpecialties(values.Get(QueryParamSpecialties)),
		Sort:         values.Get(QueryParamSort),
	}
}

// FilterDTOToEntity converts a validated filter DTO to the domain filter
func FilterDTOToEntity(q *dto.DoctorFilterQuery) entity.DoctorFilter {
	var specialties []string
	if len(q.Specialties) > 0 {
		specialties = append(specialties, q.Specialties...)
	}
	return entity.DoctorFilter{
		Search:       q.Search,
		Consultation: entity.ConsultationMode(q.Consultation),
		Specialties:  specialties,
		Sort:         entity.SortKey(q.Sort),
	}
}

// FilterToDTO converts the domain filter back to its DTO
func FilterToDTO(f entity.DoctorFilter) dto.DoctorFilterQuery {
	var specialties []string
	if len(f.Specialties) > 0 {
		specialties = append(specialties, f.Specialties...)
	}
	return dto.DoctorFilterQuery{
		Search:       f.Search,
		Consultation: string(f.Consultation),
		Specialties:  specialties,
		Sort:         string(f.Sort),
	}
}

// FilterToQuery encodes the filter as URL query parameters, omitting unset fields
func FilterToQuery(f entity.DoctorFilter) url.Values {
	values := url.Values{}
	if f.Search != "" {
		values.Set(QueryParamSearch, f.Search)
	}
	if f.Consultation != "" {
		values.Set(QueryParamConsultation, string(f.Consultation))
	}
	if len(f.Specialties) > 0 {
		values.Set(QueryParamSpecialties, strings.Join(f.Specialties, ","))
	}
	if f.Sort != entity.SortNone {
		values.Set(QueryParamSort, string(f.Sort))
	}
	return values
}

// FilterChangeToUpdate maps a filter change request onto its FilterUpdate case
func FilterChangeToUpdate(req *dto.FilterChangeRequest) (entity.FilterUpdate, error) {
	switch req.Type {
	case FilterChangeSearch:
		return entity.SetSearch{Search: req.Value.Text}, nil
	case FilterChangeConsultation:
		mode := entity.ConsultationMode(req.Value.Text)
		if mode != "" && !mode.IsValid() {
			return nil, fmt.Errorf("%w: unknown consultation mode %q", ErrInvalidFilterChange, req.Value.Text)
		}
		return entity.SetConsultation{Mode: mode}, nil
	case FilterChangeSpecialties:
		return entity.SetSpecialties{Specialties: dropEmpty(req.Value.List)}, nil
	case FilterChangeToggleSpecialty:
		if req.Value.Text == "" {
			return nil, fmt.Errorf("%w: specialty is required", ErrInvalidFilterChange)
		}
		return entity.ToggleSpecialty{Specialty: req.Value.Text}, nil
	case FilterChangeSort:
		key := entity.SortKey(req.Value.Text)
		if !key.IsValid() {
			return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidFilterChange, req.Value.Text)
		}
		return entity.SetSort{Sort: key}, nil
	case FilterChangeClear:
		return entity.ClearFilters{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilterChange, req.Type)
	}
}

func splitSpecialties(raw string) []string {
	if raw == "" {
		return nil
	}
	return dropEmpty(strings.Split(raw, ","))
}

func dropEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
