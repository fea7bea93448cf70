package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
	"github.com/intellimed/scribe/pkg/repository/memory"
)

func TestSeededClinician(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	user, err := repo.User().Get(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Value(t, user.Username).Equal("drsarah")
	gt.Value(t, user.Name).Equal("Dr. Sarah Chen")
	gt.Value(t, user.Role).Equal("doctor")

	byName, err := repo.User().GetByUsername(ctx, "drsarah")
	gt.NoError(t, err).Required()
	gt.Value(t, byName.ID).Equal(user.ID)

	missing, err := repo.User().GetByUsername(ctx, "nobody")
	gt.NoError(t, err)
	gt.Value(t, missing).Nil()
}

func TestPatientRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	t.Run("ids are monotonically increasing from 1", func(t *testing.T) {
		first, err := repo.Patient().Create(ctx, &model.PatientInput{
			PatientID: "MRN-1001",
			Name:      "John Smith",
			VisitType: types.VisitTypeNewPatient,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, first.ID).Equal(int64(1))

		second, err := repo.Patient().Create(ctx, &model.PatientInput{
			PatientID: "MRN-1002",
			Name:      "Jane Doe",
			VisitType: types.VisitTypeFollowUp,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, second.ID).Equal(int64(2))
	})

	t.Run("lookup by external id", func(t *testing.T) {
		found, err := repo.Patient().GetByPatientID(ctx, "MRN-1002")
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil().Required()
		gt.Value(t, found.Name).Equal("Jane Doe")

		missing, err := repo.Patient().GetByPatientID(ctx, "MRN-9999")
		gt.NoError(t, err)
		gt.Value(t, missing).Nil()
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.Patient().Get(ctx, 999)
		gt.Error(t, err).Is(model.ErrNotFound)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		got, err := repo.Patient().Get(ctx, 1)
		gt.NoError(t, err).Required()
		got.Name = "mutated"

		again, err := repo.Patient().Get(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Value(t, again.Name).Equal("John Smith")
	})

	t.Run("list preserves creation order", func(t *testing.T) {
		patients, err := repo.Patient().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, patients).Length(2)
		gt.Value(t, patients[0].PatientID).Equal("MRN-1001")
		gt.Value(t, patients[1].PatientID).Equal("MRN-1002")
	})
}

func TestConversationRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	recordedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	created, err := repo.Conversation().Create(ctx, &model.ConversationInput{
		PatientID:  1,
		UserID:     1,
		Transcript: "Doctor: Hello.",
	}, recordedAt)
	gt.NoError(t, err).Required()
	gt.Value(t, created.ID).Equal(int64(1))
	gt.Value(t, created.RecordedAt).Equal(recordedAt)

	t.Run("advisory references are not checked", func(t *testing.T) {
		// Patient 42 does not exist; creation still succeeds
		orphan, err := repo.Conversation().Create(ctx, &model.ConversationInput{
			PatientID: 42,
			UserID:    1,
		}, recordedAt)
		gt.NoError(t, err).Required()
		gt.Value(t, orphan.PatientID).Equal(int64(42))
	})

	t.Run("list by patient", func(t *testing.T) {
		convs, err := repo.Conversation().ListByPatient(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Array(t, convs).Length(1)
		gt.Value(t, convs[0].ID).Equal(created.ID)

		empty, err := repo.Conversation().ListByPatient(ctx, 7)
		gt.NoError(t, err).Required()
		gt.Array(t, empty).Length(0)
	})
}

func TestSOAPNoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	created, err := repo.SOAPNote().Create(ctx, &model.SOAPNoteInput{
		ConversationID: 1,
		Subjective:     "Patient reports cough.",
		Objective:      "Afebrile.",
		Assessment:     "Acute bronchitis.",
		Plan:           "Supportive care.",
	})
	gt.NoError(t, err).Required()
	gt.Bool(t, created.CreatedAt.IsZero()).False()
	gt.Value(t, created.UpdatedAt).Equal(created.CreatedAt)

	t.Run("patch overwrites only present fields", func(t *testing.T) {
		plan := "Azithromycin 250mg."
		updated, err := repo.SOAPNote().Update(ctx, created.ID, &model.SOAPNotePatch{
			Plan: &plan,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Plan).Equal("Azithromycin 250mg.")
		gt.Value(t, updated.Subjective).Equal("Patient reports cough.")
		gt.Value(t, updated.Objective).Equal("Afebrile.")
		gt.Value(t, updated.Assessment).Equal("Acute bronchitis.")
		gt.Bool(t, updated.UpdatedAt.Before(created.UpdatedAt)).False()
	})

	t.Run("empty patch still advances updatedAt", func(t *testing.T) {
		before, err := repo.SOAPNote().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		updated, err := repo.SOAPNote().Update(ctx, created.ID, &model.SOAPNotePatch{})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Plan).Equal(before.Plan)
		gt.Bool(t, updated.UpdatedAt.Before(before.UpdatedAt)).False()
	})

	t.Run("patch of unknown note is not found", func(t *testing.T) {
		plan := "x"
		_, err := repo.SOAPNote().Update(ctx, 999, &model.SOAPNotePatch{Plan: &plan})
		gt.Error(t, err).Is(model.ErrNotFound)
	})

	t.Run("lookup by conversation", func(t *testing.T) {
		found, err := repo.SOAPNote().GetByConversation(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Value(t, found).NotNil().Required()
		gt.Value(t, found.ID).Equal(created.ID)

		none, err := repo.SOAPNote().GetByConversation(ctx, 99)
		gt.NoError(t, err)
		gt.Value(t, none).Nil()
	})
}

func TestAdditionalNoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	// Two notes of the same kind accumulate instead of overwriting
	for i := 0; i < 2; i++ {
		_, err := repo.AdditionalNote().Create(ctx, &model.AdditionalNoteInput{
			SOAPNoteID: 1,
			Kind:       types.NoteKindChartSummary,
			Content:    "Summary.",
		})
		gt.NoError(t, err).Required()
	}
	_, err := repo.AdditionalNote().Create(ctx, &model.AdditionalNoteInput{
		SOAPNoteID: 2,
		Kind:       types.NoteKindMedicalCodes,
		Content:    "99213, J20.9",
	})
	gt.NoError(t, err).Required()

	notes, err := repo.AdditionalNote().ListBySOAPNote(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Array(t, notes).Length(2)
	gt.Value(t, notes[0].Kind).Equal(types.NoteKindChartSummary)
	gt.Bool(t, notes[0].ID < notes[1].ID).True()
}

func TestTranscriptSegmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	// Insert out of chronological order
	starts := []int{30, 0, 15}
	for _, start := range starts {
		_, err := repo.TranscriptSegment().Create(ctx, &model.TranscriptSegmentInput{
			ConversationID: 1,
			Speaker:        types.SpeakerDoctor,
			Content:        "segment",
			StartTime:      start,
			EndTime:        start + 5,
		})
		gt.NoError(t, err).Required()
	}

	segments, err := repo.TranscriptSegment().ListByConversation(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Array(t, segments).Length(3)
	gt.Value(t, segments[0].StartTime).Equal(0)
	gt.Value(t, segments[1].StartTime).Equal(15)
	gt.Value(t, segments[2].StartTime).Equal(30)
}
