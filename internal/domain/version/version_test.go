package version_test

import (
	"errors"
	"testing"

	"github.com/caldera-labs/aupdate/internal/domain/version"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    version.Version
		wantErr bool
	}{
		{"three components", "1.5.2", version.New(1, 5, 2, 0), false},
		{"four components", "1.5.2.3", version.New(1, 5, 2, 3), false},
		{"leading v", "v2.0.0", version.New(2, 0, 0, 0), false},
		{"leading V", "V2.0.0", version.New(2, 0, 0, 0), false},
		{"whitespace", "  1.2.3  ", version.New(1, 2, 3, 0), false},
		{"empty", "", version.Version{}, true},
		{"too many components", "1.2.3.4.5", version.Version{}, true},
		{"non-numeric", "1.a.3", version.Version{}, true},
		{"negative", "1.-2.3", version.Version{}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := version.Parse(testCase.raw)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got nil", testCase.raw)
				}

				if !errors.Is(err, version.ErrInvalidVersion) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersion", testCase.raw, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", testCase.raw, err)
			}

			if !got.Equal(testCase.want) {
				t.Errorf("Parse(%q) = %v, want %v", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "1.5.2", "1.5.2.0", 0},
		{"major greater", "2.0.0", "1.9.9", 1},
		{"minor greater", "1.6.0", "1.5.2", 1},
		{"build greater", "1.5.3", "1.5.2", 1},
		{"patch greater", "1.5.2.1", "1.5.2.0", 1},
		{"less", "1.5.1", "1.5.2", -1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			a, err := version.Parse(testCase.a)
			if err != nil {
				t.Fatalf("parse a: %v", err)
			}

			b, err := version.Parse(testCase.b)
			if err != nil {
				t.Fatalf("parse b: %v", err)
			}

			if got := a.Compare(b); got != testCase.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", testCase.a, testCase.b, got, testCase.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	v := version.New(1, 5, 2, 0)
	if got, want := v.String(), "1.5.2.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
