package tux

import (
	"fmt"
)

// Kind is a classification of error type.
type Kind string

const (
	UnknownType    Kind = "unknown_type"
	InvalidTheme   Kind = "invalid_theme"
	InvalidLatency Kind = "invalid_latency"
)

// CardError represents errors from the card building layer.
type CardError struct {
	Kind    Kind
	Message string
	Err     error
	// The card type being built, when known
	Type CardType
}

func (e *CardError) Error() string {
	switch e.Kind {
	case UnknownType:
		return fmt.Sprintf("unknown card type: %q", string(e.Type))
	case InvalidTheme:
		return fmt.Sprintf("invalid theme entry for %q: %s", string(e.Type), e.Message)
	case InvalidLatency:
		return fmt.Sprintf("invalid latency reading: %s", e.Message)
	default:
		return e.Message
	}
}

// Unwrap allows errors.Is / errors.As to work with wrapped errors.
func (e *CardError) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewUnknownTypeError(cardType CardType) *CardError {
	return &CardError{Kind: UnknownType, Type: cardType}
}

func NewInvalidThemeError(cardType CardType, msg string) *CardError {
	return &CardError{Kind: InvalidTheme, Message: msg, Type: cardType}
}

func NewInvalidLatencyError(msg string) *CardError {
	return &CardError{Kind: InvalidLatency, Message: msg}
}
