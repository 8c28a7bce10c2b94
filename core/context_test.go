package core

import "testing"

func TestContext_String(t *testing.T) {
	tests := []struct {
		ctx  Context
		want string
	}{
		{0, "(nil)"},
		{0x1, "0x1"},
		{0x7ffdcafe10, "0x7ffdcafe10"},
	}

	for _, tt := range tests {
		if got := tt.ctx.String(); got != tt.want {
			t.Errorf("Context(%#x).String() = %q, want %q", uintptr(tt.ctx), got, tt.want)
		}
	}
}

func TestContext_IsZero(t *testing.T) {
	if !Context(0).IsZero() {
		t.Error("zero handle should report IsZero")
	}
	if Context(8).IsZero() {
		t.Error("non-zero handle should not report IsZero")
	}
}
