package types

import "fmt"

// Speaker represents the attributed speaker of a transcript segment
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
)

// AllSpeakers returns all valid speakers
func AllSpeakers() []Speaker {
	return []Speaker{
		SpeakerDoctor,
		SpeakerPatient,
	}
}

// IsValid checks if the speaker is valid
func (s Speaker) IsValid() bool {
	switch s {
	case SpeakerDoctor,
		SpeakerPatient:
		return true
	default:
		return false
	}
}

// String returns the string representation of the speaker
func (s Speaker) String() string {
	return string(s)
}

// ParseSpeaker parses a string into a Speaker
func ParseSpeaker(s string) (Speaker, error) {
	speaker := Speaker(s)
	if !speaker.IsValid() {
		return "", fmt.Errorf("invalid speaker: %s", s)
	}
	return speaker, nil
}
