package types

import "fmt"

// VisitType represents the kind of patient visit
type VisitType string

const (
	VisitTypeNewPatient VisitType = "New patient"
	VisitTypeFollowUp   VisitType = "Follow up"
)

// AllVisitTypes returns all valid visit types
func AllVisitTypes() []VisitType {
	return []VisitType{
		VisitTypeNewPatient,
		VisitTypeFollowUp,
	}
}

// IsValid checks if the visit type is valid
func (v VisitType) IsValid() bool {
	switch v {
	case VisitTypeNewPatient,
		VisitTypeFollowUp:
		return true
	default:
		return false
	}
}

// String returns the string representation of the visit type
func (v VisitType) String() string {
	return string(v)
}

// ParseVisitType parses a string into a VisitType
func ParseVisitType(s string) (VisitType, error) {
	v := VisitType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid visit type: %s", s)
	}
	return v, nil
}
