package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timepp/uu/uuerrors"
)

func TestExactlyOne(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "one set",
			sources: []Source{{"file", true}, {"content", false}},
		},
		{
			name:    "none set",
			sources: []Source{{"file", false}, {"content", false}},
			wantErr: "configuration error for file/content: exactly one of file or content must be provided",
		},
		{
			name:    "several set",
			sources: []Source{{"file", true}, {"url", false}, {"content", true}},
			wantErr: "configuration error for file/url/content (value: file, content): exactly one of file, url, or content must be provided",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExactlyOne(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, uuerrors.ErrConfig)
		})
	}
}
