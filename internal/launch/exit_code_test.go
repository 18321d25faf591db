// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"testing"
)

func TestExitCodeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code ExitCode
		want bool
	}{
		{name: "zero", code: 0, want: true},
		{name: "one", code: 1, want: true},
		{name: "upper bound", code: 255, want: true},
		{name: "negative", code: -1, want: false},
		{name: "above range", code: 256, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, errs := tt.code.IsValid()
			if got != tt.want {
				t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.code, got, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatal("IsValid() returned no errors for an invalid code")
				}
				if !errors.Is(errs[0], ErrInvalidExitCode) {
					t.Errorf("validation error does not wrap ErrInvalidExitCode: %v", errs[0])
				}
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCode(127).String(); got != "127" {
		t.Errorf("ExitCode(127).String() = %q, want %q", got, "127")
	}
}
