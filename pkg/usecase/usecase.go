package usecase

import (
	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/service/transcribe"
)

// UseCases aggregates all application operations over the repository and the
// AI collaborators
type UseCases struct {
	repo        interfaces.Repository
	transcriber *transcribe.Service
	generator   interfaces.NoteGenerator

	Patient       *PatientUseCase
	User          *UserUseCase
	Conversation  *ConversationUseCase
	Segment       *SegmentUseCase
	SOAP          *SOAPUseCase
	Additional    *AdditionalNoteUseCase
	Transcription *TranscriptionUseCase
}

type Option func(*UseCases)

// WithTranscriber sets the transcription service
func WithTranscriber(svc *transcribe.Service) Option {
	return func(uc *UseCases) {
		uc.transcriber = svc
	}
}

// WithNoteGenerator sets the clinical note generator
func WithNoteGenerator(gen interfaces.NoteGenerator) Option {
	return func(uc *UseCases) {
		uc.generator = gen
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Patient = NewPatientUseCase(repo)
	uc.User = NewUserUseCase(repo)
	uc.Conversation = NewConversationUseCase(repo)
	uc.Segment = NewSegmentUseCase(repo)
	uc.SOAP = NewSOAPUseCase(repo, uc.generator)
	uc.Additional = NewAdditionalNoteUseCase(repo, uc.generator)
	uc.Transcription = NewTranscriptionUseCase(uc.transcriber)

	return uc
}
