package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	gollemopenai "github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/service/transcribe"
)

// OpenAI holds CLI flags for the OpenAI-backed AI collaborators: the
// chat-completion model used for note generation and the Whisper model used
// for transcription.
type OpenAI struct {
	apiKey       string
	chatModel    string
	whisperModel string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key. When unset the server runs in demo mode: uploads fall back to the sample transcript and note generation is unavailable",
			Sources:     cli.EnvVars("SCRIBE_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-chat-model",
			Usage:       "Chat completion model for note generation",
			Value:       "gpt-4o",
			Sources:     cli.EnvVars("SCRIBE_OPENAI_CHAT_MODEL"),
			Destination: &o.chatModel,
		},
		&cli.StringFlag{
			Name:        "openai-whisper-model",
			Usage:       "Audio transcription model",
			Value:       "whisper-1",
			Sources:     cli.EnvVars("SCRIBE_OPENAI_WHISPER_MODEL"),
			Destination: &o.whisperModel,
		},
	}
}

// LogValue renders the configuration for startup logging. The API key is
// reduced to a presence flag.
func (o OpenAI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("api_key_set", o.apiKey != ""),
		slog.String("chat_model", o.chatModel),
		slog.String("whisper_model", o.whisperModel),
	)
}

// IsConfigured reports whether an API key was provided
func (o *OpenAI) IsConfigured() bool {
	return o.apiKey != ""
}

// ConfigureLLM creates the chat-completion client. Returns nil when no API
// key is configured (note generation will be unavailable).
func (o *OpenAI) ConfigureLLM(ctx context.Context) (gollem.LLMClient, error) {
	if o.apiKey == "" {
		return nil, nil
	}

	client, err := gollemopenai.New(ctx, o.apiKey, gollemopenai.WithModel(o.chatModel))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	return client, nil
}

// ConfigureTranscriber creates the Whisper transcriber. Returns nil when no
// API key is configured (uploads will use the demo transcript fallback).
func (o *OpenAI) ConfigureTranscriber() interfaces.Transcriber {
	if o.apiKey == "" {
		return nil
	}
	return transcribe.NewOpenAI(o.apiKey, o.whisperModel)
}
