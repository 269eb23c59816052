package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-tracker/internal/types"
)

func TestPrintJobModel(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobModel{
		Title:          "Senior Engineer",
		Terms:          []string{"AWS", "Docker", "Kubernetes"},
		RequiredTerms:  []string{"AWS", "Kubernetes"},
		PreferredTerms: []string{"Docker"},
	}

	p.PrintJobModel(job)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED JOB")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Required Terms")
	assert.Contains(t, output, "AWS")
	assert.Contains(t, output, "Docker")
}

func TestPrintJobModel_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobModel(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobModel_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobModel{
		Title:         "Engineer",
		RequiredTerms: []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"},
	}

	p.PrintJobModel(job)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintResumeModel(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ResumeModel{
		Sections: map[string]string{
			"skills":     "Go, AWS",
			"experience": "Software Engineer at Acme",
		},
		SectionTerms: map[string][]string{
			"skills":     {"AWS"},
			"experience": {"Acme", "Software Engineer"},
		},
		Titles: []string{"Software Engineer"},
		Terms:  []string{"AWS", "Acme", "Software Engineer"},
	}

	p.PrintResumeModel(resume)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED RESUME")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "skills")
	assert.Contains(t, output, "experience")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		Scores: types.Scores{
			MustHave: 1.0,
			Recency:  0.6,
			Final:    0.72,
		},
		MatchedTerms: []string{"AWS", "Docker"},
		MissingTerms: []string{"Kubernetes"},
	}

	p.PrintMatchResult("my-resume", result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "my-resume")
	assert.Contains(t, output, "0.720")
	assert.Contains(t, output, "Matched (2)")
	assert.Contains(t, output, "Missing (1)")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintKnockout_Passed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKnockout(types.Knockout{Passed: true})

	assert.Contains(t, buf.String(), "KNOCKOUT CHECKS PASSED")
}

func TestPrintKnockout_Failures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKnockout(types.Knockout{
		Passed:   false,
		Failures: []string{"Location requirement not found in resume"},
	})

	output := buf.String()
	assert.Contains(t, output, "KNOCKOUT FAILURES")
	assert.Contains(t, output, "Location requirement")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
