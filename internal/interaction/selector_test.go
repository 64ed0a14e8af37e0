// Where: internal/interaction/selector_test.go
// What: Tests for prompt error mapping.
// Why: Ensure callers can detect cancellation without importing huh.
package interaction

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestMapPromptErrTranslatesAbort(t *testing.T) {
	if got := mapPromptErr(huh.ErrUserAborted); !errors.Is(got, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", got)
	}
}

func TestMapPromptErrPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	if got := mapPromptErr(boom); !errors.Is(got, boom) {
		t.Fatalf("expected original error, got %v", got)
	}
	if got := mapPromptErr(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
