package domain_test

import (
	"testing"

	"github.com/kurochkinivan/cover_client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Transitions(t *testing.T) {
	t.Parallel()

	pending := domain.Entry{ID: "1", SourceName: "a.pdf", Status: domain.StatusPending}
	require.NoError(t, pending.Validate())

	uploading := pending.Uploading()
	require.NoError(t, uploading.Validate())
	assert.Equal(t, domain.StatusPending, pending.Status, "original entry must not change")

	succeeded := uploading.Succeeded(&domain.Result{Handle: "h", OutputName: "a_cover.pdf"})
	require.NoError(t, succeeded.Validate())
	assert.True(t, succeeded.Status.Terminal())

	failed := uploading.Failed("")
	require.NoError(t, failed.Validate())
	assert.Equal(t, "unknown error", failed.ErrorMessage)
}

func TestEntry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry domain.Entry
	}{
		{"missing id", domain.Entry{Status: domain.StatusPending}},
		{"pending with result", domain.Entry{ID: "1", Status: domain.StatusPending, Result: &domain.Result{}}},
		{"uploading with error", domain.Entry{ID: "1", Status: domain.StatusUploading, ErrorMessage: "x"}},
		{"succeeded without result", domain.Entry{ID: "1", Status: domain.StatusSucceeded}},
		{"failed without message", domain.Entry{ID: "1", Status: domain.StatusFailed}},
		{"failed with result", domain.Entry{ID: "1", Status: domain.StatusFailed, ErrorMessage: "x", Result: &domain.Result{}}},
		{"unknown status", domain.Entry{ID: "1", Status: "done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, tt.entry.Validate())
		})
	}
}
