package extractor

import "context"

const (
	msgMissingURL = "Fout: geen video-URL meegegeven."
	msgNoVideoID  = "Fout: kon geen video_id extraheren."
)

// Transcribe takes the raw command-line arguments, fetches the transcript of
// the video named by the first one and returns the line to print. Every
// failure becomes a line; nothing is retried.
func Transcribe(ctx context.Context, args []string, p Provider) string {
	if len(args) < 1 {
		return msgMissingURL
	}

	videoID, ok := ExtractVideoID(args[0])
	if !ok {
		return msgNoVideoID
	}

	segments, err := p.FetchTranscript(ctx, videoID)
	if err != nil {
		return Classify(err).Line()
	}

	return JoinSegments(segments)
}
