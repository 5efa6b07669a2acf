package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-generator/internal/types"
)

func sampleProfile() *types.Profile {
	return &types.Profile{
		Personal: types.Personal{
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Title:      "Analyst",
			WebsiteURL: "https://ada.dev",
		},
		Skills: types.Skills{
			Technical:  []types.FreeText{"Go", "LaTeX"},
			Leadership: []types.FreeText{"Mentoring"},
		},
		Education: types.Education{Degree: "BS Mathematics"},
		Experience: []types.Company{
			{
				Company: "Analytical Engines",
				Positions: []types.Position{
					{Title: "Lead"},
					{Title: "Engineer"},
				},
			},
			{
				Company:   "Babbage & Co",
				Positions: []types.Position{{Title: "Intern"}},
			},
		},
	}
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(sampleProfile())
	output := buf.String()

	assert.Contains(t, output, "PROFILE SUMMARY")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Analyst")
	assert.Contains(t, output, "https://ada.dev")
	assert.Contains(t, output, "2 technical, 1 leadership")
	assert.Contains(t, output, "2 companies, 3 positions")
	assert.Contains(t, output, "Analytical Engines (2 positions)")
	assert.Contains(t, output, "Babbage & Co")
	assert.NotContains(t, output, "Babbage & Co (")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_NoWebsite(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := sampleProfile()
	profile.Personal.WebsiteURL = ""
	p.PrintProfile(profile)

	assert.Contains(t, buf.String(), "QR code skipped")
}

func TestPrintProfile_ManyCompanies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := sampleProfile()
	profile.Experience = nil
	for i := 0; i < 8; i++ {
		profile.Experience = append(profile.Experience, types.Company{
			Company:   types.FreeText(fmt.Sprintf("Company %d", i)),
			Positions: []types.Position{{Title: "Engineer"}},
		})
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "Company 4")
	assert.NotContains(t, output, "Company 5")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary("run-123", []StepStatus{
		{Step: "load_profile", Status: "completed"},
		{Step: "generate_qr_code", Status: "skipped"},
	})
	output := buf.String()

	assert.Contains(t, output, "RUN SUMMARY")
	assert.Contains(t, output, "Run: run-123")
	assert.Contains(t, output, "✓ load_profile")
	assert.Contains(t, output, "- generate_qr_code")
	assert.Contains(t, output, "skipped")
}

func TestPrintRunSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary("run-123", nil)

	assert.Empty(t, buf.String())
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings([]string{"no website URL", "something else"})
	output := buf.String()

	assert.Contains(t, output, "WARNINGS")
	assert.Contains(t, output, "Found 2 warnings")
	assert.Contains(t, output, "no website URL")
}

func TestPrintWarnings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings(nil)

	assert.Contains(t, buf.String(), "NO WARNINGS")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TEST", strings.Repeat("x", 200))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 100))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ääääääää", truncate("ääääääää", 8))
}
