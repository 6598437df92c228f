package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorChain(t *testing.T) {
	cause := errors.New("connection reset")
	coded := NewError(CodeUnavailable, "upstream unreachable", cause)
	wrapped := fmt.Errorf("load board: %w", coded)

	if !Is(wrapped, CodeUnavailable) {
		t.Fatal("code lost through wrapping")
	}
	if Is(wrapped, CodeNotFound) {
		t.Fatal("wrong code matched")
	}
	if CodeOf(wrapped) != CodeUnavailable {
		t.Fatalf("CodeOf = %s", CodeOf(wrapped))
	}
	if MessageOf(wrapped) != "upstream unreachable" {
		t.Fatalf("MessageOf = %q", MessageOf(wrapped))
	}
	if !errors.Is(wrapped, cause) {
		t.Fatal("cause lost through wrapping")
	}
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	if CodeOf(errors.New("plain")) != CodeInternal {
		t.Fatal("plain errors must default to internal")
	}
	if MessageOf(errors.New("plain")) != "" {
		t.Fatal("plain errors carry no user-facing message")
	}
}
