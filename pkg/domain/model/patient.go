package model

import (
	"github.com/intellimed/scribe/pkg/domain/types"
)

// Patient represents a patient record. Patients are created via the API and
// are immutable afterwards.
type Patient struct {
	ID              int64           `json:"id"`
	PatientID       string          `json:"patientId"`
	Name            string          `json:"name"`
	DateOfBirth     string          `json:"dateOfBirth,omitempty"`
	VisitType       types.VisitType `json:"visitType"`
	AppointmentTime string          `json:"appointmentTime,omitempty"`
}

// PatientInput is the insertable shape of Patient
type PatientInput struct {
	PatientID       string          `json:"patientId"`
	Name            string          `json:"name"`
	DateOfBirth     string          `json:"dateOfBirth,omitempty"`
	VisitType       types.VisitType `json:"visitType"`
	AppointmentTime string          `json:"appointmentTime,omitempty"`
}

// Validate checks the input shape and reports all offending fields
func (x *PatientInput) Validate() error {
	var fields []string
	if x.PatientID == "" {
		fields = append(fields, "patientId")
	}
	if x.Name == "" {
		fields = append(fields, "name")
	}
	if !x.VisitType.IsValid() {
		fields = append(fields, "visitType")
	}
	if len(fields) > 0 {
		return invalid("invalid patient data", fields...)
	}
	return nil
}
