// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "config.cue"); err != nil {
		t.Errorf("CheckFileSize() at the limit returned error: %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "config.cue")
	if err == nil {
		t.Fatal("CheckFileSize() over the limit returned nil error")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()

		if got := FormatError(nil, "config.cue"); got != nil {
			t.Errorf("FormatError(nil) = %v, want nil", got)
		}
	})

	t.Run("non-CUE error keeps its message", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("read failed")
		got := FormatError(cause, "config.cue")
		if got == nil {
			t.Fatal("FormatError() returned nil for a non-nil error")
		}
		if !errors.Is(got, cause) {
			t.Errorf("formatted error does not wrap the original: %v", got)
		}
		if !strings.Contains(got.Error(), "config.cue") {
			t.Errorf("error %q does not name the file", got)
		}
	})

	t.Run("CUE validation error carries the field path", func(t *testing.T) {
		t.Parallel()

		ctx := cuecontext.New()
		schema := ctx.CompileString(`#S: { install: { continue_on_failure: bool } }`).
			LookupPath(cue.ParsePath("#S"))
		value := ctx.CompileString(`install: continue_on_failure: "yes"`)

		err := schema.Unify(value).Validate(cue.Concrete(false))
		if err == nil {
			t.Fatal("expected a CUE validation error")
		}

		got := FormatError(err, "config.cue")
		if !strings.Contains(got.Error(), "config.cue") {
			t.Errorf("error %q does not name the file", got)
		}
		if !strings.Contains(got.Error(), "install.continue_on_failure") {
			t.Errorf("error %q does not carry the JSON path of the bad field", got)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single field", path: []string{"manifest"}, want: "manifest"},
		{name: "nested field", path: []string{"install", "command"}, want: "install.command"},
		{name: "list index", path: []string{"candidates", "0"}, want: "candidates[0]"},
		{name: "leading index stays literal", path: []string{"0", "x"}, want: "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
