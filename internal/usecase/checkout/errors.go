package checkout

import (
	"errors"
	"strings"
)

var (
	ErrFlowNotFound       = errors.New("no checkout in progress")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	ErrNoPaymentPending   = errors.New("no payment awaiting confirmation")
	ErrAlreadyComplete    = errors.New("checkout already completed")
	ErrNotAtReview        = errors.New("order can only be placed from the review step")
	ErrOrderFailed        = errors.New("failed to place order, please try again")
)

// ValidationError blocks a step transition; Fields maps each failing
// field to its user-facing message.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	return "please fill in all required fields: " + strings.Join(msgs, "; ")
}
