package pipeline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bkristol/outliner/internal/artifact"
)

func TestIsRetryable(t *testing.T) {
	retryable := &artifact.RetryableError{StatusCode: 503, Message: "unavailable"}
	if !IsRetryable(retryable) {
		t.Error("RetryableError should be retryable")
	}
	if !IsRetryable(fmt.Errorf("push outline: %w", retryable)) {
		t.Error("wrapped RetryableError should be retryable")
	}
	if IsRetryable(errors.New("bad request")) {
		t.Error("plain error should not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("nil should not be retryable")
	}
}

func TestBackoffGrowsAndCaps(t *testing.T) {
	for attempt := 0; attempt < 8; attempt++ {
		d := Backoff(attempt)
		base := time.Duration(1<<uint(attempt)) * time.Second
		if base > 30*time.Second {
			base = 30 * time.Second
		}
		if d < base {
			t.Errorf("attempt %d: backoff %v below base %v", attempt, d, base)
		}
		if d > base+base/2 {
			t.Errorf("attempt %d: backoff %v exceeds base plus jitter %v", attempt, d, base+base/2)
		}
	}
}
