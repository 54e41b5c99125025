package update

import (
	"testing"

	"github.com/caldera-labs/aupdate/internal/domain/release"
	"github.com/caldera-labs/aupdate/internal/domain/version"
)

func mustVersion(t *testing.T, s string) version.Version {
	t.Helper()

	v, err := version.Parse(s)
	if err != nil {
		t.Fatalf("version.Parse(%q) error = %v", s, err)
	}

	return v
}

const validSha512 = "00000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"

func withFile(r release.Release, url string) release.Release {
	fd := release.NewFileDescriptor(url, validSha512)

	return release.New(r.Version(), r.ChangeLog(), &fd, r.EarlyAccess())
}

func TestProjectStableOnlyHistoryExcludesEarlyAccess(t *testing.T) {
	current := mustVersion(t, "1.5.0")

	releases := []release.Release{
		release.New(mustVersion(t, "1.5.0"), nil, nil, false),
		release.New(mustVersion(t, "1.5.1"), nil, nil, false),
		release.New(mustVersion(t, "1.6.0"), nil, nil, true), // early-access, above newest stable
	}

	history, newest := project(releases, current, false)

	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2 (early-access above the newest stable release excluded)", len(history))
	}

	if newest != nil {
		t.Fatalf("newest = %v, want nil (no installable release)", newest)
	}
}

func TestProjectIncludesEarlyAccessBetweenCurrentAndNewestStable(t *testing.T) {
	current := mustVersion(t, "1.4.0")

	releases := []release.Release{
		release.New(mustVersion(t, "1.4.0"), nil, nil, false),
		release.New(mustVersion(t, "1.5.0"), nil, nil, true), // traversed on the way to 1.5.1 stable
		release.New(mustVersion(t, "1.5.1"), nil, nil, false),
	}

	history, _ := project(releases, current, false)

	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3 (traversed early-access release included)", len(history))
	}

	if history[0].Version().String() != "1.5.1.0" {
		t.Errorf("history[0] = %s, want newest first", history[0].Version().String())
	}
}

func TestProjectIncludesEarlyAccessEqualToCurrent(t *testing.T) {
	current := mustVersion(t, "1.5.1")

	releases := []release.Release{
		release.New(mustVersion(t, "1.5.0"), nil, nil, false),
		release.New(mustVersion(t, "1.5.1"), nil, nil, true), // the running build itself shipped early-access
	}

	history, _ := project(releases, current, false)

	found := false

	for _, r := range history {
		if r.Version().Equal(current) {
			found = true
		}
	}

	if !found {
		t.Errorf("history does not contain the early-access release equal to currentVersion")
	}
}

func TestProjectEarlyAccessEnabledShowsEverything(t *testing.T) {
	current := mustVersion(t, "1.0.0")

	releases := []release.Release{
		release.New(mustVersion(t, "1.0.0"), nil, nil, false),
		release.New(mustVersion(t, "2.0.0"), nil, nil, true),
	}

	history, _ := project(releases, current, true)

	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
}

func TestProjectNewSkipsNonInstallable(t *testing.T) {
	current := mustVersion(t, "1.0.0")

	releases := []release.Release{
		release.New(mustVersion(t, "2.0.0"), nil, nil, false), // no file: not installable
	}

	_, newest := project(releases, current, false)
	if newest != nil {
		t.Fatalf("newest = %v, want nil", newest)
	}
}

func TestProjectNewPicksHighestInstallableAboveCurrent(t *testing.T) {
	current := mustVersion(t, "1.0.0")

	r2 := withFile(release.New(mustVersion(t, "2.0.0"), nil, nil, false), "https://x/2")
	r3 := withFile(release.New(mustVersion(t, "3.0.0"), nil, nil, false), "https://x/3")

	releases := []release.Release{r2, r3}

	_, newest := project(releases, current, false)
	if newest == nil {
		t.Fatalf("newest = nil, want 3.0.0")
	}

	if newest.Version().String() != "3.0.0.0" {
		t.Errorf("newest = %s, want 3.0.0.0", newest.Version().String())
	}
}

func TestProjectNewExcludesEarlyAccessWhenDisabled(t *testing.T) {
	current := mustVersion(t, "1.0.0")

	ea := withFile(release.New(mustVersion(t, "2.0.0"), nil, nil, true), "https://x/2")

	_, newest := project([]release.Release{ea}, current, false)
	if newest != nil {
		t.Fatalf("newest = %v, want nil (early-access candidate excluded)", newest)
	}

	_, newest = project([]release.Release{ea}, current, true)
	if newest == nil {
		t.Fatalf("newest = nil, want 2.0.0 when early access enabled")
	}
}
