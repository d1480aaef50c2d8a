package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	segments []Segment
	err      error
	calls    []string
}

func (f *fakeProvider) FetchTranscript(_ context.Context, videoID string) ([]Segment, error) {
	f.calls = append(f.calls, videoID)
	return f.segments, f.err
}

const rickroll = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		provider  *fakeProvider
		want      string
		wantCalls []string
	}{
		{
			name:     "no arguments",
			provider: &fakeProvider{},
			want:     "Fout: geen video-URL meegegeven.",
		},
		{
			name:     "no video ID",
			args:     []string{"https://example.com"},
			provider: &fakeProvider{},
			want:     "Fout: kon geen video_id extraheren.",
		},
		{
			name: "segments joined",
			args: []string{rickroll},
			provider: &fakeProvider{segments: []Segment{
				{Text: "Never"}, {Text: "gonna"}, {Text: "give"},
			}},
			want:      "Never gonna give",
			wantCalls: []string{"dQw4w9WgXcQ"},
		},
		{
			name:      "transcripts disabled",
			args:      []string{rickroll},
			provider:  &fakeProvider{err: ErrTranscriptsDisabled},
			want:      "Fout: Transcripties zijn uitgeschakeld voor deze video.",
			wantCalls: []string{"dQw4w9WgXcQ"},
		},
		{
			name:      "generic failure",
			args:      []string{rickroll},
			provider:  &fakeProvider{err: errors.New("503 Service Unavailable")},
			want:      "Fout: 503 Service Unavailable",
			wantCalls: []string{"dQw4w9WgXcQ"},
		},
		{
			name:      "extra arguments ignored",
			args:      []string{"https://youtu.be/VO6XEQIsCoM", "https://example.com"},
			provider:  &fakeProvider{segments: []Segment{{Text: "hi"}}},
			want:      "hi",
			wantCalls: []string{"VO6XEQIsCoM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transcribe(context.Background(), tt.args, tt.provider)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.provider.calls)
		})
	}
}

func TestTranscribeIsRepeatable(t *testing.T) {
	p := ProviderFunc(func(context.Context, string) ([]Segment, error) {
		return []Segment{{Text: "Never"}, {Text: "gonna"}, {Text: "give"}}, nil
	})

	first := Transcribe(context.Background(), []string{rickroll}, p)
	second := Transcribe(context.Background(), []string{rickroll}, p)
	require.Equal(t, "Never gonna give", first)
	assert.Equal(t, first, second)
}
