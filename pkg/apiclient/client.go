package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
	"github.com/intellimed/scribe/pkg/service/transcribe"
	"github.com/intellimed/scribe/pkg/utils/logging"
)

// ErrAPIError is returned when the server answers with a non-2xx status.
// The response's error message and status code are attached as values.
var ErrAPIError = goerr.New("api request failed")

// Client is the capture-side companion to the REST API: it uploads audio,
// records conversations and drives note generation on behalf of a recorder
// frontend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3000")
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadResult is the outcome of an audio upload. Source is "provider" for a
// genuine transcription and "fallback" when either the server degraded to
// the demo transcript or this client could not reach the server at all.
type UploadResult struct {
	Transcript   string            `json:"transcript"`
	RecordingURL string            `json:"recordingUrl"`
	Source       transcribe.Source `json:"source"`
}

// Fallback reports whether the transcript is the canned demo text rather
// than a provider transcription
func (r *UploadResult) Fallback() bool {
	return r.Source == transcribe.SourceFallback
}

// UploadAudio posts the captured audio as a multipart form. When the server
// is unreachable the demo transcript is returned instead, tagged as
// fallback, so the documentation flow can be exercised offline.
func (c *Client) UploadAudio(ctx context.Context, filename string, audio io.Reader) (*UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreatePart(audioPartHeader(filename))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create multipart field")
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, goerr.Wrap(err, "failed to buffer audio data")
	}
	if err := writer.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-audio", body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		logging.From(ctx).Warn("server unreachable, using demo transcript",
			"url", c.baseURL,
			"error", err.Error(),
		)
		return &UploadResult{
			Transcript: transcribe.FallbackTranscript,
			Source:     transcribe.SourceFallback,
		}, nil
	}
	defer httpResp.Body.Close() //nolint:errcheck // response body

	var result UploadResult
	if err := decodeResponse(httpResp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePatient registers a patient record
func (c *Client) CreatePatient(ctx context.Context, input *model.PatientInput) (*model.Patient, error) {
	var patient model.Patient
	if err := c.post(ctx, "/api/patients", input, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetPatient fetches a patient by id
func (c *Client) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	var patient model.Patient
	if err := c.get(ctx, fmt.Sprintf("/api/patients/%d", id), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// CreateConversation stores a transcribed encounter
func (c *Client) CreateConversation(ctx context.Context, input *model.ConversationInput) (*model.Conversation, error) {
	var conv model.Conversation
	if err := c.post(ctx, "/api/conversations", input, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// SOAPRequest asks the server to structure a transcript into SOAP sections.
// A non-zero ConversationID persists the note.
type SOAPRequest struct {
	Transcript     string           `json:"transcript"`
	ConversationID int64            `json:"conversationId,omitempty"`
	Format         types.NoteFormat `json:"format,omitempty"`
	Detail         types.NoteDetail `json:"detail,omitempty"`
}

// SOAPResponse carries the generated sections; ID is set only when the note
// was persisted server-side.
type SOAPResponse struct {
	ID         int64  `json:"id,omitempty"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// GenerateSOAPNotes converts a transcript into SOAP sections. Generation is
// never degraded: a provider failure on the server side surfaces as an error.
func (c *Client) GenerateSOAPNotes(ctx context.Context, req *SOAPRequest) (*SOAPResponse, error) {
	var resp SOAPResponse
	if err := c.post(ctx, "/api/generate-soap-notes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSOAPNote applies a partial edit to a persisted note
func (c *Client) UpdateSOAPNote(ctx context.Context, id int64, patch *model.SOAPNotePatch) (*model.SOAPNote, error) {
	var note model.SOAPNote
	if err := c.put(ctx, fmt.Sprintf("/api/soap-notes/%d", id), patch, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// NoteRequest asks for a secondary note derived from SOAP sections
type NoteRequest struct {
	SOAPNoteID int64  `json:"soapNoteId"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// NoteResponse is a generated secondary note
type NoteResponse struct {
	ID      int64          `json:"id"`
	Content string         `json:"content"`
	Kind    types.NoteKind `json:"type"`
}

var notePaths = map[types.NoteKind]string{
	types.NoteKindChartSummary:       "/api/generate-chart-summary",
	types.NoteKindClinicalGuidelines: "/api/check-clinical-guidelines",
	types.NoteKindMedicalCodes:       "/api/generate-medical-codes",
}

// GenerateAdditionalNote requests a secondary note of the given kind
func (c *Client) GenerateAdditionalNote(ctx context.Context, kind types.NoteKind, req *NoteRequest) (*NoteResponse, error) {
	path, ok := notePaths[kind]
	if !ok {
		return nil, goerr.New("unknown note kind", goerr.V("kind", kind))
	}

	var resp NoteResponse
	if err := c.post(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTranscriptSegment stores one speaker-attributed utterance
func (c *Client) CreateTranscriptSegment(ctx context.Context, input *model.TranscriptSegmentInput) (*model.TranscriptSegment, error) {
	var seg model.TranscriptSegment
	if err := c.post(ctx, "/api/transcript-segments", input, &seg); err != nil {
		return nil, err
	}
	return &seg, nil
}

// audioPartHeader builds the multipart header for the audioFile field with
// an audio/* content type derived from the filename extension, which the
// server requires before transcribing.
func audioPartHeader(filename string) textproto.MIMEHeader {
	contentType := mime.TypeByExtension(path.Ext(filename))
	if !strings.HasPrefix(contentType, "audio/") {
		contentType = "audio/webm"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audioFile"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	return h
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("path", path))
	}
	defer resp.Body.Close() //nolint:errcheck // response body

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return goerr.Wrap(ErrAPIError, apiErr.Error,
			goerr.V("status", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response body")
	}
	return nil
}
