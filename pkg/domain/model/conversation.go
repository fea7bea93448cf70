package model

import "time"

// Conversation represents one recording session between a clinician and a
// patient. Immutable after creation. The referenced patient and user ids are
// advisory: existence is not checked on create.
type Conversation struct {
	ID           int64     `json:"id"`
	PatientID    int64     `json:"patientId"`
	UserID       int64     `json:"userId"`
	RecordingURL string    `json:"recordingUrl,omitempty"`
	Transcript   string    `json:"transcript,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// ConversationInput is the insertable shape of Conversation. RecordedAt is
// stamped by the server, not taken from the request.
type ConversationInput struct {
	PatientID    int64  `json:"patientId"`
	UserID       int64  `json:"userId"`
	RecordingURL string `json:"recordingUrl,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
}

// Validate checks the input shape and reports all offending fields
func (x *ConversationInput) Validate() error {
	var fields []string
	if x.PatientID == 0 {
		fields = append(fields, "patientId")
	}
	if x.UserID == 0 {
		fields = append(fields, "userId")
	}
	if len(fields) > 0 {
		return invalid("invalid conversation data", fields...)
	}
	return nil
}
