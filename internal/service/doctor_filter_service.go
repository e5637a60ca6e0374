package service

import (
	"cmp"
	"slices"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// MaxSuggestions caps the number of names returned for search autocomplete
const MaxSuggestions = 3

// FilterDoctors returns the doctors matching filter, in filter order:
//
//  1. name contains filter.Search (case-insensitive)
//  2. consultation mode includes filter.Consultation
//  3. specialty intersects filter.Specialties
//  4. stable sort by fee ascending or experience descending
//
// Neither doctors nor filter is modified. The result is never nil.
func FilterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	search := strings.ToLower(filter.Search)

	result := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		if search != "" && !strings.Contains(strings.ToLower(d.Name), search) {
			continue
		}
		if filter.Consultation != "" && !d.Offers(filter.Consultation) {
			continue
		}
		if len(filter.Specialties) > 0 && !d.HasAnySpecialty(filter.Specialties) {
			continue
		}
		result = append(result, *d)
	}

	switch filter.Sort {
	case entity.SortFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(a.Fee, b.Fee)
		})
	case entity.SortExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}

// GetAllSpecialties returns every specialty in doctors, deduplicated and sorted
func GetAllSpecialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	specialties := make([]string, 0)
	for _, d := range doctors {
		for _, s := range d.Specialty {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			specialties = append(specialties, s)
		}
	}
	slices.Sort(specialties)
	return specialties
}

// SuggestDoctorNames returns up to MaxSuggestions names containing query,
// case-insensitively, in list order. A blank query yields no suggestions.
func SuggestDoctorNames(doctors []entity.Doctor, query string) []string {
	suggestions := make([]string, 0, MaxSuggestions)
	if strings.TrimSpace(query) == "" {
		return suggestions
	}

	term := strings.ToLower(query)
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), term) {
			suggestions = append(suggestions, d.Name)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
	}
	return suggestions
}
