package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBadRequest(t *testing.T) {
	nb := New("not bad request")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "no message on wire",
			err:  NoMessageOnWireError,
			want: true,
		},
		{
			name: "empty prompt wrapped",
			err:  fmt.Errorf("enhancing: %w", EmptyPromptError),
			want: true,
		},
		{
			name: "unsupported target",
			err:  UnsupportedTargetError,
			want: true,
		},
		{
			name: "unknown example wrapped",
			err:  fmt.Errorf("%w: 7", UnknownExampleError),
			want: true,
		},
		{
			name: "stale result",
			err:  StaleResultError,
			want: false,
		},
		{
			name: "not bad request",
			err:  nb,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsBadRequest(tt.err))
		})
	}
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		precondition bool
		service      bool
		storage      bool
		data         bool
	}{
		{
			name:         "credential missing",
			err:          CredentialMissingError,
			precondition: true,
		},
		{
			name:         "wrapped generation in progress",
			err:          fmt.Errorf("sending: %w", GenerationInProgressError),
			precondition: true,
		},
		{
			name:    "service",
			err:     NewServiceError("Gemini Chat Service", "Empty response received from chat service."),
			service: true,
		},
		{
			name:    "storage",
			err:     &StorageError{Key: "k", Err: New("disk full")},
			storage: true,
		},
		{
			name:    "quota",
			err:     fmt.Errorf("saving: %w", &QuotaExceededError{Key: "k", Size: 10, Capacity: 5}),
			storage: true,
		},
		{
			name: "data",
			err:  &DataError{Key: "k", Err: New("bad json")},
			data: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.precondition, IsPrecondition(tt.err))
			assert.Equal(t, tt.service, IsService(tt.err))
			assert.Equal(t, tt.storage, IsStorage(tt.err))
			assert.Equal(t, tt.data, IsData(tt.err))
		})
	}
}

func TestServiceErrorMessage(t *testing.T) {
	err := NewServiceError("Gemini Enhance Service", "Empty enhanced prompt received.")
	assert.Equal(t, "[Gemini Enhance Service] Empty enhanced prompt received.", err.Error())
}

func TestQuotaExceededErrorMessage(t *testing.T) {
	err := &QuotaExceededError{Key: "dassigner_projects", Size: 12, Capacity: 8}
	assert.Contains(t, err.Error(), "dassigner_projects")
	assert.Contains(t, err.Error(), "8 bytes")
}
