// Package renderer turns final account snapshots into human-readable
// markdown reports. The engine's own CSV output stays machine-oriented;
// this package is only for people.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/tealfin/clearing"
)

//go:embed *.md
var templates embed.FS

// Row is one account in the report, with every balance formatted in the
// report currency.
type Row struct {
	Client    clearing.ClientID
	Available clearing.Money
	Held      clearing.Money
	Total     clearing.Money
	Locked    bool
}

// Summary aggregates a run's snapshots for rendering.
type Summary struct {
	Currency string
	Rows     []Row
	Accounts int
	Locked   int
	Total    clearing.Money
}

// NewSummary builds the report model from sorted snapshots.
func NewSummary(rows []clearing.Snapshot, currency string) *Summary {
	s := &Summary{
		Currency: currency,
		Accounts: len(rows),
		Total:    clearing.M(clearing.A(0), currency),
	}
	for _, row := range rows {
		s.Rows = append(s.Rows, Row{
			Client:    row.Client,
			Available: clearing.M(row.Available, currency),
			Held:      clearing.M(row.Held, currency),
			Total:     clearing.M(row.Total, currency),
			Locked:    row.Locked,
		})
		s.Total = s.Total.Add(clearing.M(row.Total, currency))
		if row.Locked {
			s.Locked++
		}
	}
	return s
}

// RenderSummary renders the summary to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title":    "summary_title.md",
		"summary_accounts": "summary_accounts.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
