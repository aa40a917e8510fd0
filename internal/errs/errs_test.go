package errs_test

import (
	"errors"
	"strings"
	"testing"

	"phashbench/internal/errs"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := errs.Wrap(errs.ErrImage, "decode", "/tmp/in.png", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, errs.ErrImage) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"image error", "decode", "/tmp/in.png", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := errs.Wrap(errs.ErrConfig, "", "", nil)
	if err.Error() != "config error: failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"modification", errs.Wrap(errs.ErrUnknownModification, "resolve", "sharpen", nil), "unknown_modification"},
		{"algorithm", errs.Wrap(errs.ErrUnknownAlgorithm, "lookup", "whash", nil), "unknown_algorithm"},
		{"image", errs.Wrap(errs.ErrImage, "encode", "out.png", errors.New("disk full")), "image"},
		{"config exists", errs.Wrap(errs.ErrConfigExists, "create", "config.toml", nil), "config_exists"},
		{"config", errs.Wrap(errs.ErrConfig, "parse", "config.toml", nil), "config"},
		{"plain", errors.New("other"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.Kind(tt.err); got != tt.want {
				t.Fatalf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}
