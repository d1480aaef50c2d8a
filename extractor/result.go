package extractor

import (
	"errors"
	"strings"
)

const failurePrefix = "Fout: "

// FailureKind tells a disabled transcript apart from every other provider error.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureDisabled
)

// Failure is a classified provider error.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Classify maps a provider error onto a Failure. The error text is kept
// verbatim for FailureOther.
func Classify(err error) Failure {
	if errors.Is(err, ErrTranscriptsDisabled) {
		return Failure{Kind: FailureDisabled}
	}
	return Failure{Kind: FailureOther, Message: err.Error()}
}

// Line renders the failure as a single output line.
func (f Failure) Line() string {
	if f.Kind == FailureDisabled {
		return failurePrefix + "Transcripties zijn uitgeschakeld voor deze video."
	}
	return failurePrefix + f.Message
}

// IsFailureLine reports whether line is one of the error lines produced by
// Transcribe rather than transcript text.
func IsFailureLine(line string) bool {
	return strings.HasPrefix(line, failurePrefix)
}

// JoinSegments concatenates segment text with single spaces, in order.
func JoinSegments(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}
