package entity

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ProviderRecord is a raw provider entry as served by the external directory feed.
// Field types are lenient: a malformed value decodes to its zero value instead of
// failing the whole document.
type ProviderRecord struct {
	ID           FlexInt              `json:"id"`
	Name         FlexString           `json:"name"`
	Specialities []ProviderSpeciality `json:"specialities"`
	Experience   FlexString           `json:"experience"`
	Fees         FlexString           `json:"fees"`
	VideoConsult FlexBool             `json:"video_consult"`
	InClinic     FlexBool             `json:"in_clinic"`
	Clinic       *ProviderClinic      `json:"clinic"`
	Photo        FlexString           `json:"photo,omitempty"`
	Introduction FlexString           `json:"doctor_introduction,omitempty"`
	Languages    []FlexString         `json:"languages,omitempty"`
}

type ProviderSpeciality struct {
	Name FlexString `json:"name"`
}

type ProviderClinic struct {
	Name    FlexString       `json:"name"`
	Address *ProviderAddress `json:"address"`
}

type ProviderAddress struct {
	Locality     FlexString `json:"locality"`
	City         FlexString `json:"city"`
	AddressLine1 FlexString `json:"address_line1"`
	Location     FlexString `json:"location,omitempty"`
	LogoURL      FlexString `json:"logo_url,omitempty"`
}

// FlexInt accepts a JSON number or a numeric string. Anything else decodes to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexInt(int(v))
	}
	return nil
}

// FlexString accepts any JSON scalar and keeps its textual form. Objects, arrays
// and null decode to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = ""
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*f = FlexString(s)
		}
	case '{', '[', 'n':
	default:
		*f = FlexString(data)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// FlexBool accepts true/false, "true"/"false" and 0/1. Anything else decodes to false.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	*f = false
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if b, err := strconv.ParseBool(raw); err == nil {
		*f = FlexBool(b)
	}
	return nil
}
