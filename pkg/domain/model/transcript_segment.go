package model

import (
	"github.com/intellimed/scribe/pkg/domain/types"
)

// TranscriptSegment represents a timestamped span of speech attributed to a
// speaker role. Offsets are whole seconds from the start of the recording.
type TranscriptSegment struct {
	ID             int64         `json:"id"`
	ConversationID int64         `json:"conversationId"`
	Speaker        types.Speaker `json:"speaker"`
	Content        string        `json:"content"`
	StartTime      int           `json:"startTime"`
	EndTime        int           `json:"endTime"`
}

// TranscriptSegmentInput is the insertable shape of TranscriptSegment
type TranscriptSegmentInput struct {
	ConversationID int64         `json:"conversationId"`
	Speaker        types.Speaker `json:"speaker"`
	Content        string        `json:"content"`
	StartTime      int           `json:"startTime"`
	EndTime        int           `json:"endTime"`
}

// Validate checks the input shape and reports all offending fields
func (x *TranscriptSegmentInput) Validate() error {
	var fields []string
	if x.ConversationID == 0 {
		fields = append(fields, "conversationId")
	}
	if !x.Speaker.IsValid() {
		fields = append(fields, "speaker")
	}
	if x.Content == "" {
		fields = append(fields, "content")
	}
	if x.StartTime < 0 {
		fields = append(fields, "startTime")
	}
	if x.EndTime < x.StartTime {
		fields = append(fields, "endTime")
	}
	if len(fields) > 0 {
		return invalid("invalid transcript segment data", fields...)
	}
	return nil
}
