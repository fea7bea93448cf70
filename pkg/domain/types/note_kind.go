package types

import "fmt"

// NoteKind represents the kind of an AI-generated additional note
type NoteKind string

const (
	NoteKindChartSummary       NoteKind = "chart_summary"
	NoteKindClinicalGuidelines NoteKind = "clinical_guidelines"
	NoteKindMedicalCodes       NoteKind = "cpt_icd"
)

// AllNoteKinds returns all valid note kinds
func AllNoteKinds() []NoteKind {
	return []NoteKind{
		NoteKindChartSummary,
		NoteKindClinicalGuidelines,
		NoteKindMedicalCodes,
	}
}

// IsValid checks if the note kind is valid
func (k NoteKind) IsValid() bool {
	switch k {
	case NoteKindChartSummary,
		NoteKindClinicalGuidelines,
		NoteKindMedicalCodes:
		return true
	default:
		return false
	}
}

// String returns the string representation of the note kind
func (k NoteKind) String() string {
	return string(k)
}

// ParseNoteKind parses a string into a NoteKind
func ParseNoteKind(s string) (NoteKind, error) {
	k := NoteKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid note kind: %s", s)
	}
	return k, nil
}
