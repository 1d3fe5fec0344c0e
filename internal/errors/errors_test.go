package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestDriftError_Format(t *testing.T) {
	err := New(ErrorTypeStorage, "Failed to save baseline").
		WithCause("permission denied").
		WithSolutions("Check write permissions on .envdrift.json", "Run with a different --root").
		WithHelp("envdrift help baseline")

	msg := err.Error()
	for _, want := range []string{
		"Error: Failed to save baseline",
		"Cause: permission denied",
		"Check write permissions",
		"Help: envdrift help baseline",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}
}

func TestManifestParseError_Unwrap(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := &ManifestParseError{Path: "package.json", Err: cause}

	if !stderrors.Is(err, cause) {
		t.Error("ManifestParseError does not unwrap to its cause")
	}

	var parseErr *ManifestParseError
	if !stderrors.As(error(err), &parseErr) {
		t.Error("errors.As failed to match ManifestParseError")
	}
}

func TestAbsentBaselineError_Message(t *testing.T) {
	err := &AbsentBaselineError{Path: "/proj/.envdrift.json"}
	if !strings.Contains(err.Error(), "/proj/.envdrift.json") {
		t.Errorf("message should name the baseline path: %s", err.Error())
	}
}
