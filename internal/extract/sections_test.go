package extract

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSections_HeadingsSwitchCursor(t *testing.T) {
	text := "Jane Doe\nSummary\nSeasoned engineer.\nExperience\nBuilt things.\nShipped more things.\nSkills\nGo, SQL"

	sections := DetectSections(text)

	assert.Equal(t, "Jane Doe", sections[SectionOther])
	assert.Equal(t, "Seasoned engineer.", sections[SectionSummary])
	assert.Equal(t, "Built things.\nShipped more things.", sections[SectionExperience])
	assert.Equal(t, "Go, SQL", sections[SectionSkills])
}

func TestDetectSections_HeadingMatchIsCaseInsensitive(t *testing.T) {
	sections := DetectSections("WORK EXPERIENCE\nDid work.\n  education  \nBS Computer Science")

	assert.Equal(t, "Did work.", sections[SectionExperience])
	assert.Equal(t, "BS Computer Science", sections[SectionEducation])
}

func TestDetectSections_HeadingLineIsDiscarded(t *testing.T) {
	sections := DetectSections("Skills\nGo")

	assert.NotContains(t, sections[SectionSkills], "Skills")
	assert.Equal(t, "Go", sections[SectionSkills])
}

func TestDetectSections_BlankLinesDropped(t *testing.T) {
	sections := DetectSections("Summary\n\n\nOne line.\n\nTwo line.")

	assert.Equal(t, "One line.\nTwo line.", sections[SectionSummary])
}

func TestDetectSections_NoHeadingsAccumulatesUnderOther(t *testing.T) {
	sections := DetectSections("just\nplain\ntext")

	assert.Len(t, sections, 1)
	assert.Equal(t, "just\nplain\ntext", sections[SectionOther])
}

func TestDetectSections_RequirementsAndPreferredHeadings(t *testing.T) {
	sections := DetectSections("Requirements\nGo expertise\nNice to have\nKubernetes")

	assert.Equal(t, "Go expertise", sections[SectionRequirements])
	assert.Equal(t, "Kubernetes", sections[SectionPreferred])
}

// Every non-blank, non-heading line must land in exactly one section.
func TestDetectSections_BodiesPartitionInputLines(t *testing.T) {
	text := "Intro line\nSummary\nAbout me.\nExperience\nRole one.\n\nRole two.\nSkills\nGo\nSQL"

	sections := DetectSections(text)

	var got []string
	for _, body := range sections {
		got = append(got, strings.Split(body, "\n")...)
	}

	var want []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if _, isHeading := matchHeading(stripped); isHeading {
			continue
		}
		want = append(want, stripped)
	}

	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestDetectSections_EmptyInput(t *testing.T) {
	assert.Empty(t, DetectSections(""))
}
