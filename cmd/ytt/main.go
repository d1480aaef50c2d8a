package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/cpunion/youtube-transcript/extractor"
	"github.com/cpunion/youtube-transcript/progress"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
}

// cli always ends with exactly one line on stdout, flag errors included.
// A nil base uses http.DefaultTransport.
func cli(ctx context.Context, args []string, stdout, stderr io.Writer, base http.RoundTripper) {
	fs := flag.NewFlagSet("ytt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Diagnostics only; both write to stderr
	verbose := fs.Bool("v", false, "Log request details to stderr")
	showProgress := fs.Bool("progress", false, "Show transcript download progress on stderr")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stdout, "Fout: %v\n", err)
		return
	}

	provider := newProvider(stderr, *verbose, *showProgress, base)
	run(ctx, stdout, fs.Args(), provider)
}

func newProvider(stderr io.Writer, verbose, showProgress bool, base http.RoundTripper) extractor.Provider {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	transport := base
	if showProgress {
		transport = &progress.Transport{Base: base, Name: "Transcript", Out: stderr}
	}

	opts := []extractor.YouTubeOption{extractor.WithLogger(logger)}
	if transport != nil {
		opts = append(opts, extractor.WithHTTPClient(&http.Client{Transport: transport}))
	}

	return extractor.NewYouTubeProvider(opts...)
}

func run(ctx context.Context, stdout io.Writer, args []string, provider extractor.Provider) {
	fmt.Fprintln(stdout, extractor.Transcribe(ctx, args, provider))
}
