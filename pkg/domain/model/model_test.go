package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	ge := goerr.Unwrap(err)
	gt.Value(t, ge).NotNil().Required()
	fields, ok := ge.Values()[model.FieldsKey].([]string)
	gt.Bool(t, ok).True()
	return fields
}

func TestPatientInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		input := &model.PatientInput{
			PatientID: "MRN-1001",
			Name:      "John Smith",
			VisitType: types.VisitTypeNewPatient,
		}
		gt.NoError(t, input.Validate())
	})

	t.Run("all offending fields reported", func(t *testing.T) {
		input := &model.PatientInput{VisitType: "Walk in"}
		err := input.Validate()
		gt.Error(t, err).Is(model.ErrInvalidInput)
		gt.Value(t, fieldsOf(t, err)).Equal([]string{"patientId", "name", "visitType"})
	})
}

func TestConversationInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		input := &model.ConversationInput{PatientID: 1, UserID: 1}
		gt.NoError(t, input.Validate())
	})

	t.Run("missing references rejected", func(t *testing.T) {
		err := (&model.ConversationInput{}).Validate()
		gt.Error(t, err).Is(model.ErrInvalidInput)
		gt.Value(t, fieldsOf(t, err)).Equal([]string{"patientId", "userId"})
	})
}

func TestTranscriptSegmentInputValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		input := &model.TranscriptSegmentInput{
			ConversationID: 1,
			Speaker:        types.SpeakerDoctor,
			Content:        "How are you feeling today?",
			StartTime:      0,
			EndTime:        4,
		}
		gt.NoError(t, input.Validate())
	})

	t.Run("end before start rejected", func(t *testing.T) {
		input := &model.TranscriptSegmentInput{
			ConversationID: 1,
			Speaker:        types.SpeakerPatient,
			Content:        "Not great.",
			StartTime:      10,
			EndTime:        4,
		}
		err := input.Validate()
		gt.Error(t, err).Is(model.ErrInvalidInput)
		gt.Value(t, fieldsOf(t, err)).Equal([]string{"endTime"})
	})

	t.Run("zero-length segment allowed", func(t *testing.T) {
		input := &model.TranscriptSegmentInput{
			ConversationID: 1,
			Speaker:        types.SpeakerPatient,
			Content:        "Yes.",
			StartTime:      7,
			EndTime:        7,
		}
		gt.NoError(t, input.Validate())
	})
}

func TestAdditionalNoteInputValidate(t *testing.T) {
	t.Run("unknown kind rejected", func(t *testing.T) {
		input := &model.AdditionalNoteInput{
			SOAPNoteID: 1,
			Kind:       "referral",
			Content:    "text",
		}
		err := input.Validate()
		gt.Error(t, err).Is(model.ErrInvalidInput)
		gt.Value(t, fieldsOf(t, err)).Equal([]string{"type"})
	})
}

func TestSOAPNotePatch(t *testing.T) {
	t.Run("empty patch detected", func(t *testing.T) {
		gt.Bool(t, (&model.SOAPNotePatch{}).IsEmpty()).True()

		plan := "Updated plan."
		gt.Bool(t, (&model.SOAPNotePatch{Plan: &plan}).IsEmpty()).False()
	})
}

func TestSections(t *testing.T) {
	note := &model.SOAPNote{
		Subjective: "S",
		Objective:  "O",
		Assessment: "A",
		Plan:       "P",
	}
	sections := note.Sections()
	gt.Value(t, sections).Equal(model.SOAPSections{
		Subjective: "S",
		Objective:  "O",
		Assessment: "A",
		Plan:       "P",
	})
}

func TestSentinelDistinct(t *testing.T) {
	gt.Bool(t, errors.Is(model.ErrInvalidInput, model.ErrNotFound)).False()
}
