package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	ErrTranscriberNotConfigured = goerr.New("transcription service is not configured")
	ErrGeneratorNotConfigured   = goerr.New("note generator is not configured")
)

// Context keys for error values
const (
	PatientIDKey      = "patient_id"
	ConversationIDKey = "conversation_id"
	SOAPNoteIDKey     = "soap_note_id"
)
