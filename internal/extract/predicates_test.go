package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTitleLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"simple title", "Project Manager", true},
		{"with slash", "Software Engineer / Tech Lead", true},
		{"with hyphen", "Front-End Developer", true},
		{"surrounding whitespace", "  Data Analyst  ", true},
		{"lowercase start", "project manager", false},
		{"contains digits", "Engineer 2", false},
		{"contains punctuation", "Engineer, Backend", false},
		{"nine words", "Very Senior Staff Principal Distinguished Lead Software Platform Engineer", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTitleLine(tt.line))
		})
	}
}

func TestIsAcronym(t *testing.T) {
	assert.True(t, IsAcronym("CRM"))
	assert.True(t, IsAcronym("AB"))
	assert.True(t, IsAcronym("ABCDEF"))
	assert.False(t, IsAcronym("A"))
	assert.False(t, IsAcronym("ABCDEFG"))
	assert.False(t, IsAcronym("Crm"))
	assert.False(t, IsAcronym(""))
}

func TestHasDateRange(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"year to year", "Acme Corp 2019 - 2022", true},
		{"month year to present", "Jan 2021 - Present", true},
		{"to separator", "2018 to 2020", true},
		{"en dash", "2018 – 2020", true},
		{"lowercase present", "2020 - present", true},
		{"single year", "Graduated 2020", false},
		{"no dates", "Project Manager", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDateRange(tt.line))
		})
	}
}

func TestDetectDateRanges_MultipleRanges(t *testing.T) {
	text := "Engineer\nMar 2015 - Feb 2018\nSenior Engineer\n2018 - Present"

	ranges := DetectDateRanges(text)

	assert.Len(t, ranges, 2)
	assert.Equal(t, "Mar 2015", ranges[0].Start)
	assert.Equal(t, "Feb 2018", ranges[0].End)
	assert.Equal(t, "2018", ranges[1].Start)
	assert.Equal(t, "Present", ranges[1].End)
}

func TestDetectDateRanges_NoRanges(t *testing.T) {
	assert.Empty(t, DetectDateRanges("no dates here"))
}

func TestDateRange_Years(t *testing.T) {
	years := DateRange{Start: "Mar 2015", End: "Feb 2018"}.Years()
	assert.Equal(t, []int{2015, 2018}, years)

	years = DateRange{Start: "2020", End: "Present"}.Years()
	assert.Equal(t, []int{2020}, years)
}
