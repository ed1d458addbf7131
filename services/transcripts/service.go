package transcripts

import (
	"context"
	"strings"

	"github.com/abdulazeezumaruba/az-media-transcripts/models"
	"github.com/abdulazeezumaruba/az-media-transcripts/youtube"
	"github.com/sirupsen/logrus"
)

const extractFailedMessage = "Could not extract video ID from URL."

type service struct {
	provider Provider
	config   Config
	logger   *logrus.Logger
}

func NewService(provider Provider, cfg Config) Service {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &service{
		provider: provider,
		config:   cfg,
		logger:   log,
	}
}

// FetchAll processes URLs sequentially, one attempt each. One URL's failure
// never affects its siblings.
func (s *service) FetchAll(ctx context.Context, urls []string) []models.VideoTranscript {
	results := make([]models.VideoTranscript, 0, len(urls))
	for _, url := range urls {
		results = append(results, s.fetchOne(ctx, url))
	}
	return results
}

func (s *service) fetchOne(ctx context.Context, url string) models.VideoTranscript {
	logger := s.logger.WithField("video_url", url)

	videoID, ok := ExtractVideoID(url)
	if !ok {
		logger.Info("Could not extract video ID")
		return models.NewFailure(url, extractFailedMessage)
	}

	if s.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.FetchTimeout)
		defer cancel()
	}

	chunks, err := s.provider.Transcript(ctx, videoID, s.config.Languages)
	if err != nil {
		if youtube.IsKnownFailure(err) {
			logger.WithError(err).Info("Transcript not available")
			return models.NewFailure(url, err.Error())
		}
		logger.WithError(err).Error("Transcript retrieval failed")
		return models.NewFailure(url, "Unexpected error: "+err.Error())
	}

	logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"chunks":   len(chunks),
	}).Info("Transcript retrieved")

	return models.NewSuccess(url, joinChunks(chunks))
}

// joinChunks concatenates chunk text with single spaces, preserving the
// provider's order.
func joinChunks(chunks []youtube.Chunk) string {
	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	return strings.Join(texts, " ")
}
