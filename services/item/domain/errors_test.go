package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrItemAlreadyExists, "item already exists"},
		{ErrInvalidItem, "invalid item"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Fatalf("unexpected message: %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}
	if errors.Is(wrapped, ErrItemAlreadyExists) {
		t.Fatal("sentinels must be distinct")
	}
}
