package types

import "fmt"

// NoteFormat controls the layout of generated SOAP note sections
type NoteFormat string

const (
	NoteFormatParagraph NoteFormat = "paragraph"
	NoteFormatBullets   NoteFormat = "bullets"
)

// IsValid checks if the note format is valid
func (f NoteFormat) IsValid() bool {
	switch f {
	case NoteFormatParagraph,
		NoteFormatBullets:
		return true
	default:
		return false
	}
}

// Normalize returns the format, treating empty as paragraph.
func (f NoteFormat) Normalize() NoteFormat {
	if f == "" {
		return NoteFormatParagraph
	}
	return f
}

// String returns the string representation of the note format
func (f NoteFormat) String() string {
	return string(f)
}

// ParseNoteFormat parses a string into a NoteFormat
func ParseNoteFormat(s string) (NoteFormat, error) {
	f := NoteFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid note format: %s", s)
	}
	return f, nil
}

// NoteDetail controls the verbosity of generated SOAP note sections
type NoteDetail string

const (
	NoteDetailDetailed NoteDetail = "detailed"
	NoteDetailConcise  NoteDetail = "concise"
)

// IsValid checks if the note detail is valid
func (d NoteDetail) IsValid() bool {
	switch d {
	case NoteDetailDetailed,
		NoteDetailConcise:
		return true
	default:
		return false
	}
}

// Normalize returns the detail, treating empty as detailed.
func (d NoteDetail) Normalize() NoteDetail {
	if d == "" {
		return NoteDetailDetailed
	}
	return d
}

// String returns the string representation of the note detail
func (d NoteDetail) String() string {
	return string(d)
}

// ParseNoteDetail parses a string into a NoteDetail
func ParseNoteDetail(s string) (NoteDetail, error) {
	d := NoteDetail(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid note detail: %s", s)
	}
	return d, nil
}
