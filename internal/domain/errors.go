package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrNoMatch             = errors.New("no matching candidate")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrAlreadyStored       = errors.New("asset already stored")
	ErrInvalidID           = errors.New("invalid asset id")
	ErrRunInProgress       = errors.New("a pass is already running")
	ErrRunNotFound         = errors.New("run not found")
	ErrUnknownProvider     = errors.New("unknown provider")
)

// FetchError is a failed payload retrieval
type FetchError struct {
	URL        string
	StatusCode int // 0 for transport errors
	Reason     string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Reason
}
