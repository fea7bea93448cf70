package model

import "time"

// SOAPSections holds the four free-text sections of a SOAP note without
// storage identity. It is the unit the note generator produces.
type SOAPSections struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// SOAPNote represents a persisted SOAP note tied to a conversation.
// One-to-one with Conversation in practice, not enforced.
type SOAPNote struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	Subjective     string    `json:"subjective"`
	Objective      string    `json:"objective"`
	Assessment     string    `json:"assessment"`
	Plan           string    `json:"plan"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Sections returns the free-text sections of the note
func (n *SOAPNote) Sections() SOAPSections {
	return SOAPSections{
		Subjective: n.Subjective,
		Objective:  n.Objective,
		Assessment: n.Assessment,
		Plan:       n.Plan,
	}
}

// SOAPNoteInput is the insertable shape of SOAPNote
type SOAPNoteInput struct {
	ConversationID int64  `json:"conversationId"`
	Subjective     string `json:"subjective"`
	Objective      string `json:"objective"`
	Assessment     string `json:"assessment"`
	Plan           string `json:"plan"`
}

// Validate checks the input shape and reports all offending fields
func (x *SOAPNoteInput) Validate() error {
	if x.ConversationID == 0 {
		return invalid("invalid SOAP note data", "conversationId")
	}
	return nil
}

// SOAPNotePatch holds a partial update of a SOAP note. Only non-nil fields
// overwrite the stored value.
type SOAPNotePatch struct {
	Subjective *string `json:"subjective,omitempty"`
	Objective  *string `json:"objective,omitempty"`
	Assessment *string `json:"assessment,omitempty"`
	Plan       *string `json:"plan,omitempty"`
}

// IsEmpty reports whether the patch carries no fields
func (p *SOAPNotePatch) IsEmpty() bool {
	return p.Subjective == nil && p.Objective == nil && p.Assessment == nil && p.Plan == nil
}
