package model

import (
	"time"

	"github.com/intellimed/scribe/pkg/domain/types"
)

// AdditionalNote represents a secondary AI-generated artifact derived from a
// SOAP note. Append-only: repeated generation of the same kind accumulates
// rows rather than overwriting.
type AdditionalNote struct {
	ID         int64          `json:"id"`
	SOAPNoteID int64          `json:"soapNoteId"`
	Kind       types.NoteKind `json:"type"`
	Content    string         `json:"content"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// AdditionalNoteInput is the insertable shape of AdditionalNote
type AdditionalNoteInput struct {
	SOAPNoteID int64          `json:"soapNoteId"`
	Kind       types.NoteKind `json:"type"`
	Content    string         `json:"content"`
}

// Validate checks the input shape and reports all offending fields
func (x *AdditionalNoteInput) Validate() error {
	var fields []string
	if x.SOAPNoteID == 0 {
		fields = append(fields, "soapNoteId")
	}
	if !x.Kind.IsValid() {
		fields = append(fields, "type")
	}
	if x.Content == "" {
		fields = append(fields, "content")
	}
	if len(fields) > 0 {
		return invalid("invalid additional note data", fields...)
	}
	return nil
}
