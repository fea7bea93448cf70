package notegen_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
	"github.com/intellimed/scribe/pkg/service/notegen"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"mock response"}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return s.GenerateStream(ctx, input...)
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func inputText(input []gollem.Input) string {
	var sb strings.Builder
	for _, in := range input {
		if text, ok := in.(gollem.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

func TestGenerateSOAP(t *testing.T) {
	ctx := context.Background()

	t.Run("parses sections from JSON response", func(t *testing.T) {
		var gotPrompt string
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						gotPrompt = inputText(input)
						raw, err := json.Marshal(model.SOAPSections{
							Subjective: "Patient reports three days of cough.",
							Objective:  "Temp 98.6F, lungs with scattered rhonchi.",
							Assessment: "Acute bronchitis.",
							Plan:       "Supportive care, follow up in one week.",
						})
						gt.NoError(t, err).Required()
						return &gollem.Response{Texts: []string{string(raw)}}, nil
					},
				}, nil
			},
		}

		client := notegen.New(llm)
		sections, err := client.GenerateSOAP(ctx, "Doctor: How long have you had the cough?", types.NoteFormatParagraph, types.NoteDetailDetailed)
		gt.NoError(t, err).Required()
		gt.Value(t, sections.Assessment).Equal("Acute bronchitis.")
		gt.Value(t, sections.Plan).Equal("Supportive care, follow up in one week.")
		gt.Bool(t, strings.Contains(gotPrompt, "Doctor: How long have you had the cough?")).True()
	})

	t.Run("provider failure is a hard error", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, goerr.New("model overloaded")
					},
				}, nil
			},
		}

		client := notegen.New(llm)
		_, err := client.GenerateSOAP(ctx, "transcript", types.NoteFormatParagraph, types.NoteDetailDetailed)
		gt.Error(t, err).Is(notegen.ErrGeneration)
	})

	t.Run("malformed JSON is a hard error", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{Texts: []string{"not json"}}, nil
					},
				}, nil
			},
		}

		client := notegen.New(llm)
		_, err := client.GenerateSOAP(ctx, "transcript", types.NoteFormatParagraph, types.NoteDetailDetailed)
		gt.Error(t, err).Is(notegen.ErrGeneration)
	})

	t.Run("empty response is a hard error", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{}, nil
					},
				}, nil
			},
		}

		client := notegen.New(llm)
		_, err := client.GenerateSOAP(ctx, "transcript", types.NoteFormatParagraph, types.NoteDetailDetailed)
		gt.Error(t, err).Is(notegen.ErrGeneration)
	})
}

func TestSecondaryNotes(t *testing.T) {
	ctx := context.Background()
	sections := model.SOAPSections{
		Subjective: "Cough for three days.",
		Objective:  "Afebrile.",
		Assessment: "Acute bronchitis.",
		Plan:       "Supportive care.",
	}

	newEchoClient := func(reply string, gotPrompt *string) *mockLLMClient {
		return &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						*gotPrompt = inputText(input)
						return &gollem.Response{Texts: []string{reply}}, nil
					},
				}, nil
			},
		}
	}

	t.Run("chart summary includes all sections in prompt", func(t *testing.T) {
		var prompt string
		client := notegen.New(newEchoClient("Brief summary.", &prompt))

		content, err := client.GenerateChartSummary(ctx, sections)
		gt.NoError(t, err).Required()
		gt.Value(t, content).Equal("Brief summary.")
		for _, fragment := range []string{"Cough for three days.", "Afebrile.", "Acute bronchitis.", "Supportive care."} {
			gt.Bool(t, strings.Contains(prompt, fragment)).True()
		}
	})

	t.Run("guideline check", func(t *testing.T) {
		var prompt string
		client := notegen.New(newEchoClient("Consistent with guidelines.", &prompt))

		content, err := client.CheckClinicalGuidelines(ctx, sections)
		gt.NoError(t, err).Required()
		gt.Value(t, content).Equal("Consistent with guidelines.")
	})

	t.Run("medical codes", func(t *testing.T) {
		var prompt string
		client := notegen.New(newEchoClient("CPT 99213; ICD-10 J20.9", &prompt))

		content, err := client.GenerateMedicalCodes(ctx, sections)
		gt.NoError(t, err).Required()
		gt.Value(t, content).Equal("CPT 99213; ICD-10 J20.9")
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		llm := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return nil, goerr.New("unavailable")
			},
		}

		client := notegen.New(llm)
		_, err := client.GenerateChartSummary(ctx, sections)
		gt.Error(t, err).Is(notegen.ErrGeneration)
	})
}
