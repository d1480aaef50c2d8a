package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"
)

// DefaultLanguage is the caption track requested when none is configured.
const DefaultLanguage = "en"

type transcriptClient interface {
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

// YouTubeProvider fetches transcripts through the YouTube innertube API.
type YouTubeProvider struct {
	client   transcriptClient
	language string
	logger   *slog.Logger
}

// YouTubeOption configures a YouTubeProvider.
type YouTubeOption func(*youTubeConfig)

type youTubeConfig struct {
	httpClient *http.Client
	language   string
	logger     *slog.Logger
}

// WithHTTPClient sets the HTTP client used for all YouTube requests.
func WithHTTPClient(c *http.Client) YouTubeOption {
	return func(cfg *youTubeConfig) {
		cfg.httpClient = c
	}
}

// WithLanguage overrides the caption track language.
func WithLanguage(lang string) YouTubeOption {
	return func(cfg *youTubeConfig) {
		if lang != "" {
			cfg.language = lang
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) YouTubeOption {
	return func(cfg *youTubeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

func NewYouTubeProvider(opts ...YouTubeOption) *YouTubeProvider {
	cfg := youTubeConfig{
		language: DefaultLanguage,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &YouTubeProvider{
		client:   &youtube.Client{HTTPClient: cfg.httpClient},
		language: cfg.language,
		logger:   cfg.logger,
	}
}

// FetchTranscript implements Provider.
func (yp *YouTubeProvider) FetchTranscript(ctx context.Context, videoID string) ([]Segment, error) {
	yp.logger.Debug("fetching transcript", "video_id", videoID, "language", yp.language)

	transcript, err := yp.client.GetTranscriptCtx(ctx, &youtube.Video{ID: videoID}, yp.language)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, fmt.Errorf("%w: %s", ErrTranscriptsDisabled, videoID)
		}
		yp.logger.Debug("transcript request failed", "video_id", videoID, "error", err)
		return nil, err
	}

	segments := make([]Segment, 0, len(transcript))
	for _, ts := range transcript {
		segments = append(segments, Segment{
			Text:     ts.Text,
			Start:    time.Duration(ts.StartMs) * time.Millisecond,
			Duration: time.Duration(ts.Duration) * time.Millisecond,
		})
	}

	yp.logger.Debug("transcript fetched", "video_id", videoID, "segments", len(segments))
	return segments, nil
}
