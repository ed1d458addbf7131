// Package youtube retrieves caption transcripts for YouTube videos.
//
// Primary:  watch page scrape → ytInitialPlayerResponse → caption track XML
// Fallback: ANDROID Innertube /player → captionTracks
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Typed failure categories. Callers classify with errors.Is; everything else
// coming out of Transcript is an unanticipated failure.
var (
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrNoTranscript        = errors.New("no transcript found for the requested languages")
	ErrVideoUnavailable    = errors.New("the video is unavailable")
)

// IsKnownFailure reports whether err is one of the named failure categories.
func IsKnownFailure(err error) bool {
	return errors.Is(err, ErrTranscriptsDisabled) ||
		errors.Is(err, ErrNoTranscript) ||
		errors.Is(err, ErrVideoUnavailable)
}

// Chunk is a single timed caption fragment.
type Chunk struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type Config struct {
	HTTPTimeout time.Duration
	Logger      *logrus.Logger
}

type Client struct {
	http      *http.Client
	logger    *logrus.Logger
	watchBase string
	playerURL string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		logger:    log,
		watchBase: defaultWatchBase,
		playerURL: innertubePlayerURL,
	}
}

// Transcript fetches the caption chunks of a video in the first matching
// language from langs. Chunks are returned in chronological order.
func (c *Client) Transcript(ctx context.Context, videoID string, langs []string) ([]Chunk, error) {
	chunks, err := c.fromWatchPage(ctx, videoID, langs)
	if err == nil {
		return chunks, nil
	}
	if IsKnownFailure(err) {
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"video_id": videoID,
		"error":    err.Error(),
	}).Warn("Watch page scrape failed, falling back to player API")

	return c.fromPlayerAPI(ctx, videoID, langs)
}

const playerResponseMarker = "ytInitialPlayerResponse = "

// fromWatchPage scrapes the watch page HTML and extracts the caption track
// URL from the embedded ytInitialPlayerResponse JSON. Works without a key.
func (c *Client) fromWatchPage(ctx context.Context, videoID string, langs []string) ([]Chunk, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.watchBase+"/watch?v="+videoID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch watch page")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("watch page status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 6*1024*1024))
	if err != nil {
		return nil, errors.Wrap(err, "read watch page")
	}

	idx := bytes.Index(body, []byte(playerResponseMarker))
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(playerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("malformed ytInitialPlayerResponse JSON")
	}

	var player playerResponse
	if err := json.Unmarshal(jsonData, &player); err != nil {
		return nil, errors.Wrap(err, "decode ytInitialPlayerResponse")
	}

	baseURL, err := captionTrackURL(&player, videoID, langs)
	if err != nil {
		return nil, err
	}
	return c.fetchTimedText(ctx, baseURL)
}

// fromPlayerAPI queries the ANDROID Innertube /player endpoint, which serves
// caption metadata to clients the watch page blocks.
func (c *Client) fromPlayerAPI(ctx context.Context, videoID string, langs []string) ([]Chunk, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "android innertube")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("innertube player status %d", resp.StatusCode)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, errors.Wrap(err, "decode player response")
	}

	baseURL, err := captionTrackURL(&player, videoID, langs)
	if err != nil {
		return nil, err
	}
	return c.fetchTimedText(ctx, baseURL)
}

// captionTrackURL classifies a player response into a usable caption track
// URL or one of the named failure categories.
func captionTrackURL(player *playerResponse, videoID string, langs []string) (string, error) {
	if ps := player.PlayabilityStatus; ps != nil {
		switch ps.Status {
		case "ERROR", "LOGIN_REQUIRED", "UNPLAYABLE":
			if ps.Reason != "" {
				return "", errors.Wrapf(ErrVideoUnavailable, "video %s (%s)", videoID, ps.Reason)
			}
			return "", errors.Wrapf(ErrVideoUnavailable, "video %s", videoID)
		}
	}

	if player.Captions == nil {
		return "", errors.Wrapf(ErrTranscriptsDisabled, "video %s", videoID)
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return "", errors.Wrapf(ErrTranscriptsDisabled, "video %s", videoID)
	}

	track := pickTrack(tracks, langs)
	if track == nil {
		return "", errors.Wrapf(ErrNoTranscript, "video %s (requested %s)", videoID, strings.Join(langs, ","))
	}
	return track.BaseURL, nil
}

// pickTrack selects a caption track for the given language preferences,
// preferring manual tracks over auto-generated ("asr") within a language.
func pickTrack(tracks []captionTrack, langs []string) *captionTrack {
	for _, lang := range langs {
		for i, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return &tracks[i]
			}
		}
		for i, t := range tracks {
			if t.LanguageCode == lang {
				return &tracks[i]
			}
		}
	}
	return nil
}

// fetchTimedText fetches a caption track URL and parses the timedtext XML
// into chunks, preserving document order.
func (c *Client) fetchTimedText(ctx context.Context, baseURL string) ([]Chunk, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUA)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch timedtext")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("timedtext status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, errors.Wrap(err, "read timedtext")
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, errors.Wrap(err, "parse timedtext XML")
	}

	chunks := make([]Chunk, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			Text:     text,
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return chunks, nil
}

// extractJSON returns the first balanced JSON object at the start of data,
// ignoring braces inside string literals.
func extractJSON(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false

	for i, b := range data {
		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return data[:i+1]
				}
			}
		}
	}
	return nil
}
