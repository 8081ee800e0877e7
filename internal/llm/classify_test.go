package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{"auth failure rotates", &ProviderError{Status: 401}, Rotatable},
		{"forbidden rotates", &ProviderError{Status: 403}, Rotatable},
		{"quota rotates", &ProviderError{Status: 429}, Rotatable},
		{"server error rotates", &ProviderError{Status: 500}, Rotatable},
		{"unavailable rotates", &ProviderError{Status: 503}, Rotatable},
		{"bad request does not rotate", &ProviderError{Status: 400}, NonRotatable},
		{"not found does not rotate", &ProviderError{Status: 404}, NonRotatable},
		{"transport error rotates", errors.New("dial tcp: connection refused"), Rotatable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultClassifier(tt.err))
		})
	}
}
