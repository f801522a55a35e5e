// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/may/config.yaml").
		WithSuggestion("Check file permissions").
		Wrap(cause).
		Build()

	want := "failed to load configuration: /etc/may/config.yaml: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	err := NewErrorContext().
		WithOperation("resolve script").
		WithSuggestion("Check the scripts directory").
		WithSuggestion("Run with MAY_UI_VERBOSE=true for details").
		Build()

	got := err.Format(false)
	if !strings.Contains(got, "failed to resolve script") {
		t.Errorf("Format missing message: %q", got)
	}
	if strings.Count(got, "•") != 2 {
		t.Errorf("Format should list both suggestions: %q", got)
	}
}

func TestActionableErrorFormatVerboseChain(t *testing.T) {
	inner := errors.New("inner")
	err := NewErrorContext().WithOperation("outer op").Wrap(inner).Build()

	got := err.Format(true)
	if !strings.Contains(got, "Error chain:") {
		t.Errorf("verbose Format missing chain: %q", got)
	}
	if !strings.Contains(got, "inner") {
		t.Errorf("verbose Format missing cause: %q", got)
	}
}

func TestWrapWithOperationNil(t *testing.T) {
	if err := WrapWithOperation(nil, "anything"); err != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", err)
	}
}

func TestGet(t *testing.T) {
	if got := Get(NoScriptsFoundId); got == nil || got.Id() != NoScriptsFoundId {
		t.Errorf("Get(NoScriptsFoundId) = %v", got)
	}
	if got := Get(Id(999)); got != nil {
		t.Errorf("Get(unknown) = %v, want nil", got)
	}
}
