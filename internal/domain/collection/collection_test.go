package collection_test

import (
	"testing"

	"github.com/caldera-labs/aupdate/internal/domain/collection"
	"github.com/caldera-labs/aupdate/internal/domain/feed"
)

func TestBuildClassifiesByCategoryName(t *testing.T) {
	categories := []feed.Category{
		{
			Name: "Stable",
			Releases: []feed.RawRelease{
				{Version: "1.5.0"},
				{Version: "1.5.1"},
			},
		},
		{
			Name: "earlyaccess", // case-insensitive match against "EarlyAccess"
			Releases: []feed.RawRelease{
				{Version: "1.6.0"},
			},
		},
	}

	releases := collection.Build(categories, "EarlyAccess")

	if len(releases) != 3 {
		t.Fatalf("len(releases) = %d, want 3", len(releases))
	}

	if releases[0].EarlyAccess() || releases[1].EarlyAccess() {
		t.Errorf("stable releases should not be tagged early-access")
	}

	if !releases[2].EarlyAccess() {
		t.Errorf("EarlyAccess category release should be tagged early-access")
	}
}

func TestBuildSkipsNullReleases(t *testing.T) {
	categories := []feed.Category{{Name: "Stable", Releases: nil}}

	releases := collection.Build(categories, "EarlyAccess")
	if len(releases) != 0 {
		t.Fatalf("len(releases) = %d, want 0", len(releases))
	}
}

func TestBuildSkipsUnparsableVersions(t *testing.T) {
	categories := []feed.Category{
		{
			Name: "Stable",
			Releases: []feed.RawRelease{
				{Version: "not-a-version"},
				{Version: "1.0.0"},
			},
		},
	}

	releases := collection.Build(categories, "EarlyAccess")
	if len(releases) != 1 {
		t.Fatalf("len(releases) = %d, want 1", len(releases))
	}
}

func TestBuildPreservesFileDescriptor(t *testing.T) {
	categories := []feed.Category{
		{
			Name: "Stable",
			Releases: []feed.RawRelease{
				{
					Version: "1.0.0",
					File:    &feed.RawFile{URL: "https://x/a", Sha512Checksum: "abc"},
				},
			},
		},
	}

	releases := collection.Build(categories, "EarlyAccess")
	if releases[0].File() == nil {
		t.Fatalf("File() = nil, want non-nil")
	}

	if got := releases[0].File().URL(); got != "https://x/a" {
		t.Errorf("URL() = %q, want https://x/a", got)
	}
}
