package entities

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptySignature = errors.New("signature is empty")

// Signature is the client sign-off captured at the Completion stage. Data is the image as
// produced by the signature pad (typically a PNG data URL).
type Signature struct {
	ProcessID  int64     `json:"process_id"`
	Data       string    `json:"data"`
	CapturedBy int64     `json:"captured_by"`
	CapturedAt time.Time `json:"captured_at"`
}

func (s Signature) Validate() error {
	if strings.TrimSpace(s.Data) == "" {
		return ErrEmptySignature
	}
	return nil
}
