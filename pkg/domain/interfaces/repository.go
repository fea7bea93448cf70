package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	Patient() PatientRepository
	Conversation() ConversationRepository
	SOAPNote() SOAPNoteRepository
	AdditionalNote() AdditionalNoteRepository
	TranscriptSegment() TranscriptSegmentRepository
}
