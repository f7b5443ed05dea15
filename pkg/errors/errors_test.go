package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidDirection, "direction (1,0) parallel to growth"),
			want: "INVALID_DIRECTION: direction (1,0) parallel to growth",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeInvalidTheme, stderrors.New("eof"), "parse theme.toml"),
			want: "INVALID_THEME: parse theme.toml: eof",
		},
		{
			name: "Formatted",
			err:  New(ErrCodeIndexOutOfRange, "index %d out of [0, %d)", 5, 3),
			want: "INDEX_OUT_OF_RANGE: index 5 out of [0, 3)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeNodeNotFound, "node %q", "A")
	outer := fmt.Errorf("add edge: %w", inner)

	if !Is(outer, ErrCodeNodeNotFound) {
		t.Error("Is should match through fmt.Errorf wrapping")
	}
	if Is(outer, ErrCodeDuplicateNode) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNodeNotFound) {
		t.Error("Is should not match plain errors")
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := New(ErrCodeEmptyCollection, "pop on empty stack")
	if got := GetCode(err); got != ErrCodeEmptyCollection {
		t.Errorf("GetCode = %q", got)
	}
	if got := UserMessage(err); got != "pop on empty stack" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("boom")
	if got := GetCode(plain); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
