package transcribe

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
)

// OpenAIClient transcribes audio via the OpenAI audio transcription API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ interfaces.Transcriber = &OpenAIClient{}

// NewOpenAI creates a Whisper-backed transcriber. An empty model defaults to
// whisper-1.
func NewOpenAI(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Transcribe sends the audio stream to the transcription endpoint and
// returns the transcript text
func (c *OpenAIClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to transcribe audio", goerr.V("filename", filename))
	}

	return resp.Text, nil
}
