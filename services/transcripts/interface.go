package transcripts

import (
	"context"
	"time"

	"github.com/abdulazeezumaruba/az-media-transcripts/models"
	"github.com/abdulazeezumaruba/az-media-transcripts/youtube"
	"github.com/sirupsen/logrus"
)

type Service interface {
	// FetchAll resolves a transcript for every URL, one result per input in
	// input order. Failures are reported per item, never as an error.
	FetchAll(ctx context.Context, urls []string) []models.VideoTranscript
}

// Provider is the external transcript lookup. youtube.Client implements it.
type Provider interface {
	Transcript(ctx context.Context, videoID string, langs []string) ([]youtube.Chunk, error)
}

type Config struct {
	// Languages is the caption language preference list, tried in order.
	Languages []string

	// FetchTimeout bounds a single provider lookup.
	FetchTimeout time.Duration

	// Logger defaults to the standard logrus logger when nil.
	Logger *logrus.Logger
}
