package notegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

// ErrGeneration is returned when the chat-completion provider fails. There
// is no fallback for generated clinical content: silently substituting
// fabricated notes is unacceptable, so callers always see the failure.
var ErrGeneration = goerr.New("note generation failed")

// Client generates clinical documentation through a gollem LLM client
type Client struct {
	llmClient gollem.LLMClient
}

var _ interfaces.NoteGenerator = &Client{}

// New creates a note generator over the given LLM client
func New(llmClient gollem.LLMClient) *Client {
	return &Client{llmClient: llmClient}
}

// soapResponseSchema constrains the SOAP generation session to a JSON object
// with exactly the four note sections
func soapResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "SOAPNote",
		Description: "Structured SOAP note generated from a doctor-patient conversation transcript",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"subjective": {
				Type:        gollem.TypeString,
				Description: "Patient's reported symptoms and history",
				Required:    true,
			},
			"objective": {
				Type:        gollem.TypeString,
				Description: "Examination findings",
				Required:    true,
			},
			"assessment": {
				Type:        gollem.TypeString,
				Description: "Diagnosis and clinical reasoning",
				Required:    true,
			},
			"plan": {
				Type:        gollem.TypeString,
				Description: "Treatment recommendations and next steps",
				Required:    true,
			},
		},
	}
}

// GenerateSOAP converts a transcript into the four SOAP sections using a
// JSON-schema constrained session
func (c *Client) GenerateSOAP(ctx context.Context, transcript string, format types.NoteFormat, detail types.NoteDetail) (*model.SOAPSections, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(soapResponseSchema()),
		gollem.WithSessionSystemPrompt(soapSystemPrompt(format, detail)),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrGeneration, "failed to create LLM session", goerr.V("cause", err.Error()))
	}

	prompt := fmt.Sprintf("Please generate SOAP notes from the following doctor-patient conversation transcript:\n\n%s", transcript)

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(ErrGeneration, "failed to generate SOAP notes", goerr.V("cause", err.Error()))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(ErrGeneration, "SOAP note generation returned empty result")
	}

	var sections model.SOAPSections
	if err := json.Unmarshal([]byte(resp.Texts[0]), &sections); err != nil {
		return nil, goerr.Wrap(ErrGeneration, "failed to parse SOAP note JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}

	return &sections, nil
}

// GenerateChartSummary produces a brief reference summary of the note
func (c *Client) GenerateChartSummary(ctx context.Context, sections model.SOAPSections) (string, error) {
	prompt := fmt.Sprintf("Generate a chart summary from these SOAP notes:\n\n%s", renderSections(sections))
	return c.generateProse(ctx, chartSummaryPrompt, prompt)
}

// CheckClinicalGuidelines reviews the note against clinical guidelines
func (c *Client) CheckClinicalGuidelines(ctx context.Context, sections model.SOAPSections) (string, error) {
	prompt := fmt.Sprintf("Review these SOAP notes against clinical guidelines:\n\n%s", renderSections(sections))
	return c.generateProse(ctx, clinicalGuidelinesPrompt, prompt)
}

// GenerateMedicalCodes suggests CPT and ICD-10 codes for the note
func (c *Client) GenerateMedicalCodes(ctx context.Context, sections model.SOAPSections) (string, error) {
	prompt := fmt.Sprintf("Generate appropriate CPT and ICD-10 codes for these SOAP notes:\n\n%s", renderSections(sections))
	return c.generateProse(ctx, medicalCodesPrompt, prompt)
}

func (c *Client) generateProse(ctx context.Context, systemPrompt, prompt string) (string, error) {
	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(ErrGeneration, "failed to create LLM session", goerr.V("cause", err.Error()))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(ErrGeneration, "failed to generate content", goerr.V("cause", err.Error()))
	}
	if len(resp.Texts) == 0 {
		return "", goerr.Wrap(ErrGeneration, "generation returned empty result")
	}

	return resp.Texts[0], nil
}
