package extractor

import (
	"context"
	"errors"
	"time"
)

// ErrTranscriptsDisabled is returned by a Provider when the video has its
// transcripts turned off.
var ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")

// Segment is one timed unit of transcript text.
type Segment struct {
	Text     string
	Start    time.Duration
	Duration time.Duration
}

// Provider fetches the transcript of a single video. Segments are returned in
// playback order.
type Provider interface {
	FetchTranscript(ctx context.Context, videoID string) ([]Segment, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, videoID string) ([]Segment, error)

func (f ProviderFunc) FetchTranscript(ctx context.Context, videoID string) ([]Segment, error) {
	return f(ctx, videoID)
}
