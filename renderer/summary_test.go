package renderer

import (
	"strings"
	"testing"

	"github.com/tealfin/clearing"
)

func TestRenderSummary(t *testing.T) {
	rows := []clearing.Snapshot{
		{Client: 1, Available: clearing.A(10), Held: clearing.A(0), Total: clearing.A(10), Locked: false},
		{Client: 2, Available: clearing.A(0), Held: clearing.A(0), Total: clearing.A(0), Locked: true},
	}
	got := RenderSummary(NewSummary(rows, "USD"))

	for _, want := range []string{
		"# Account Summary (USD)",
		"| 1 | $10.00 | $0.00 | $10.00 | no |",
		"| 2 | $0.00 | $0.00 | $0.00 | yes |",
		"**2** account(s), **1** locked",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	got := RenderSummary(NewSummary(nil, "EUR"))
	if strings.Contains(got, "error") {
		t.Fatalf("rendering failed:\n%s", got)
	}
	if !strings.Contains(got, "**0** account(s)") {
		t.Errorf("empty summary should report zero accounts:\n%s", got)
	}
}
