package entity

// SortKey selects the ordering applied to filtered doctors
type SortKey string

const (
	SortNone       SortKey = ""
	SortFees       SortKey = "fees"
	SortExperience SortKey = "experience"
)

// IsValid reports whether k is unset or a known sort key
func (k SortKey) IsValid() bool {
	return k == SortNone || k == SortFees || k == SortExperience
}

// DoctorFilter is the user-controlled selection criteria for the doctor list.
// It is owned by the caller and passed by value; the zero value matches everything.
type DoctorFilter struct {
	Search       string           // case-insensitive substring of the doctor name
	Consultation ConsultationMode // empty means any mode
	Specialties  []string         // doctor matches if it has any of these
	Sort         SortKey
}

// IsEmpty reports whether no criteria are set
func (f DoctorFilter) IsEmpty() bool {
	return f.Search == "" && f.Consultation == "" && len(f.Specialties) == 0 && f.Sort == SortNone
}

// HasSpecialty checks if s is among the selected specialties
func (f DoctorFilter) HasSpecialty(s string) bool {
	for _, v := range f.Specialties {
		if v == s {
			return true
		}
	}
	return false
}

// FilterUpdate is a single change to a DoctorFilter. The set of implementations is
// closed to this package: SetSearch, SetConsultation, SetSpecialties, ToggleSpecialty,
// SetSort and ClearFilters.
type FilterUpdate interface {
	Apply(f DoctorFilter) DoctorFilter
	filterUpdate()
}

type SetSearch struct{ Search string }

type SetConsultation struct{ Mode ConsultationMode }

type SetSpecialties struct{ Specialties []string }

type ToggleSpecialty struct{ Specialty string }

type SetSort struct{ Sort SortKey }

// ClearFilters resets consultation, specialties and sort. The search term is kept.
type ClearFilters struct{}

func (u SetSearch) Apply(f DoctorFilter) DoctorFilter {
	f.Search = u.Search
	return f
}

func (u SetConsultation) Apply(f DoctorFilter) DoctorFilter {
	f.Consultation = u.Mode
	return f
}

func (u SetSpecialties) Apply(f DoctorFilter) DoctorFilter {
	f.Specialties = append([]string(nil), u.Specialties...)
	return f
}

func (u ToggleSpecialty) Apply(f DoctorFilter) DoctorFilter {
	next := make([]string, 0, len(f.Specialties)+1)
	found := false
	for _, s := range f.Specialties {
		if s == u.Specialty {
			found = true
			continue
		}
		next = append(next, s)
	}
	if !found {
		next = append(next, u.Specialty)
	}
	f.Specialties = next
	return f
}

func (u SetSort) Apply(f DoctorFilter) DoctorFilter {
	f.Sort = u.Sort
	return f
}

func (ClearFilters) Apply(f DoctorFilter) DoctorFilter {
	f.Consultation = ""
	f.Specialties = nil
	f.Sort = SortNone
	return f
}

func (SetSearch) filterUpdate()       {}
func (SetConsultation) filterUpdate() {}
func (SetSpecialties) filterUpdate()  {}
func (ToggleSpecialty) filterUpdate() {}
func (SetSort) filterUpdate()         {}
func (ClearFilters) filterUpdate()    {}
