package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	s := String()
	for _, want := range []string{"version: v9.9.9", "commit: ", "built: ", "go: go"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
	if !strings.Contains(Template(), "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", Template())
	}
	if UserAgent() != "nodescape/v9.9.9" {
		t.Errorf("UserAgent() = %q", UserAgent())
	}
}
