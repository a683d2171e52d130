package services

import "errors"

// Failure kinds surfaced by boundary operations. Core mutations (rollover,
// toggle, badge evaluation) never fail on well-formed input; only auth,
// validation and external generation do.
var (
	// ErrValidation marks malformed or incomplete user input; wrap it
	// with the field message shown inline to the user.
	ErrValidation = errors.New("validation failed")

	// ErrAuth is a credential mismatch or unknown identity. The message
	// shown to the user stays generic on purpose.
	ErrAuth = errors.New("invalid email or password")

	// ErrConflict is a sign-up against an email that already has a record.
	ErrConflict = errors.New("an account with this email already exists")

	// ErrGeneration is a failed or unparsable response from the AI
	// collaborator; surfaced as a retryable error.
	ErrGeneration = errors.New("generation failed")
)
