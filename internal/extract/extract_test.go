package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/dvloznov/bankvision/internal/domain"
)

func TestValidateMediaType(t *testing.T) {
	tests := []struct {
		mimeType string
		wantErr  bool
	}{
		{"application/pdf", false},
		{"image/png", false},
		{"image/jpeg", false},
		{"image/webp", false},
		{"image/heic", false},
		{"text/csv", true},
		{"application/msword", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			err := ValidateMediaType(tt.mimeType)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMediaType(%q) error = %v, wantErr %v", tt.mimeType, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedMediaType) {
				t.Errorf("error %v does not wrap ErrUnsupportedMediaType", err)
			}
		})
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here is the result:\n{\"a\":1}", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.raw); got != tt.want {
				t.Errorf("cleanModelJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// stubProvider verifies that hand-written fakes can stand in for the real
// provider in downstream tests.
type stubProvider struct {
	result *domain.AnalysisResult
	err    error
}

func (s *stubProvider) AnalyzeStatement(ctx context.Context, doc Document) (*domain.AnalysisResult, error) {
	return s.result, s.err
}

func TestProviderInterface(t *testing.T) {
	var p Provider = &stubProvider{err: ErrUnreadableStatement}

	_, err := p.AnalyzeStatement(context.Background(), Document{MIMEType: "application/pdf"})
	if !errors.Is(err, ErrUnreadableStatement) {
		t.Errorf("error = %v, want ErrUnreadableStatement", err)
	}
}
