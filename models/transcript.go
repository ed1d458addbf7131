package models

// TranscriptRequest is the body of POST /transcripts.
type TranscriptRequest struct {
	VideoURLs []string `json:"video_urls"`
}

// VideoTranscript is the per-URL result record. The response to a batch
// request is a JSON array of these, one per input URL, in input order.
type VideoTranscript struct {
	VideoURL   string  `json:"video_url"`
	Transcript string  `json:"transcript"`
	Success    bool    `json:"success"`
	Error      *string `json:"error"`
}

// NewSuccess builds a successful result for the given input URL.
func NewSuccess(url, transcript string) VideoTranscript {
	return VideoTranscript{
		VideoURL:   url,
		Transcript: transcript,
		Success:    true,
	}
}

// NewFailure builds a failed result with an empty transcript.
func NewFailure(url, errMsg string) VideoTranscript {
	return VideoTranscript{
		VideoURL: url,
		Error:    &errMsg,
	}
}
