package version

import (
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/pkg/plugin"
)

func TestStringWithBuildInfo(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "1.2.3", "0123456789abcdef", "2026-01-02T03:04:05Z"

	s := String()
	if !strings.HasPrefix(s, "tonal version 1.2.3 (commit: 01234567, built: 2026-01-02T03:04:05Z") {
		t.Errorf("String() = %q", s)
	}
	if Short() != "1.2.3" {
		t.Errorf("Short() = %q", Short())
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit(abc) = %q", got)
	}
}

func TestInfoCarriesPluginProtocol(t *testing.T) {
	if GetInfo().PluginProtocol != plugin.ProtocolVersion {
		t.Errorf("PluginProtocol = %q", GetInfo().PluginProtocol)
	}
}
