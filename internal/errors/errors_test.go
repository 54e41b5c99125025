package updateerr_test

import (
	"context"
	"errors"
	"testing"

	updateerr "github.com/caldera-labs/aupdate/internal/errors"
)

func TestNormalizeCancellation(t *testing.T) {
	err := updateerr.Normalize("Latest", 0, context.Canceled)
	if err.Kind != updateerr.Cancelled {
		t.Fatalf("Kind = %v, want Cancelled", err.Kind)
	}
}

func TestNormalizeUnsuccessfulStatus(t *testing.T) {
	err := updateerr.Normalize("Latest", 503, errors.New("boom"))
	if err.Kind != updateerr.ResponseUnsuccessful {
		t.Fatalf("Kind = %v, want ResponseUnsuccessful", err.Kind)
	}
}

func TestNormalizeTransport(t *testing.T) {
	err := updateerr.Normalize("Latest", 0, errors.New("connection refused"))
	if err.Kind != updateerr.TransportFailed {
		t.Fatalf("Kind = %v, want TransportFailed", err.Kind)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	original := updateerr.New("Downloaded", updateerr.FilesystemFailed, errors.New("disk full"))
	again := updateerr.Normalize("Downloaded", 0, original)

	if again != original {
		t.Fatalf("Normalize should return the same *Error instance unchanged")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := updateerr.New("Validated", updateerr.FilesystemFailed, cause)

	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is should see through to the wrapped cause")
	}
}
