package memory

import (
	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
)

// Memory is a volatile in-memory repository. Nothing survives a process
// restart. Each entity kind has its own mutex-guarded map and id counter,
// and all records are copied on the way in and out so callers can never
// alias internal state.
type Memory struct {
	user              *userRepository
	patient           *patientRepository
	conversation      *conversationRepository
	soapNote          *soapNoteRepository
	additionalNote    *additionalNoteRepository
	transcriptSegment *transcriptSegmentRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository with a demo clinician seeded so
// the application is usable immediately after startup.
func New() *Memory {
	m := &Memory{
		user:              newUserRepository(),
		patient:           newPatientRepository(),
		conversation:      newConversationRepository(),
		soapNote:          newSOAPNoteRepository(),
		additionalNote:    newAdditionalNoteRepository(),
		transcriptSegment: newTranscriptSegmentRepository(),
	}

	m.user.seed(&model.User{
		Username: "drsarah",
		Name:     "Dr. Sarah Chen",
		Role:     "doctor",
	})

	return m
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Patient() interfaces.PatientRepository {
	return m.patient
}

func (m *Memory) Conversation() interfaces.ConversationRepository {
	return m.conversation
}

func (m *Memory) SOAPNote() interfaces.SOAPNoteRepository {
	return m.soapNote
}

func (m *Memory) AdditionalNote() interfaces.AdditionalNoteRepository {
	return m.additionalNote
}

func (m *Memory) TranscriptSegment() interfaces.TranscriptSegmentRepository {
	return m.transcriptSegment
}
