package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdulazeezumaruba/az-media-transcripts/config"
)

func TestValidateRequest(t *testing.T) {
	validator := NewValidator(&config.Config{})

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		opts        RequestValidationOpts
		wantErr     bool
	}{
		{
			name:        "Allowed method with JSON",
			method:      "POST",
			contentType: "application/json",
			body:        `{}`,
			opts: RequestValidationOpts{
				AllowedMethods: []string{"POST"},
				RequireJSON:    true,
			},
			wantErr: false,
		},
		{
			name:   "Method not allowed",
			method: "DELETE",
			opts: RequestValidationOpts{
				AllowedMethods: []string{"GET", "POST"},
			},
			wantErr: true,
		},
		{
			name:        "Missing JSON content type",
			method:      "POST",
			contentType: "text/plain",
			body:        `{}`,
			opts: RequestValidationOpts{
				AllowedMethods: []string{"POST"},
				RequireJSON:    true,
			},
			wantErr: true,
		},
		{
			name:        "JSON content type with charset",
			method:      "POST",
			contentType: "application/json; charset=utf-8",
			body:        `{}`,
			opts: RequestValidationOpts{
				RequireJSON: true,
			},
			wantErr: false,
		},
		{
			name:        "Body too large",
			method:      "POST",
			contentType: "application/json",
			body:        strings.Repeat("a", 64),
			opts: RequestValidationOpts{
				MaxContentLength: 16,
			},
			wantErr: true,
		},
		{
			name:    "No constraints",
			method:  "GET",
			opts:    RequestValidationOpts{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			err := validator.ValidateRequest(req, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
