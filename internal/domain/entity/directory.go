package entity

import (
	"fmt"
	"time"
)

// DirectoryStatus is the load state of the doctor directory
type DirectoryStatus string

const (
	DirectoryIdle    DirectoryStatus = "idle"
	DirectoryLoading DirectoryStatus = "loading"
	DirectoryReady   DirectoryStatus = "ready"
	DirectoryFailed  DirectoryStatus = "failed"
)

// FetchError is returned when the provider list could not be retrieved.
// StatusCode is zero for transport and decode failures.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch doctors: API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch doctors: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Appointment is a validated booking request. It is never stored.
type Appointment struct {
	Reference string
	Doctor    Doctor
	Date      time.Time
	Mode      ConsultationMode
}
