package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Len(t, c.Landing.Features, 4)
	assert.Len(t, c.Learn.Courses, 6)
	assert.Len(t, c.Learn.Categories, 7)
	assert.Len(t, c.Certify.Certifications, 6)
	assert.Len(t, c.Certify.Benefits, 3)
	assert.Len(t, c.Match.Jobs, 6)
	assert.Len(t, c.Match.Stats, 4)
	assert.Len(t, c.Community.Discussions, 4)
	assert.Len(t, c.Community.Events, 3)
	assert.Len(t, c.Community.Mentors, 3)
	assert.Len(t, c.Dashboard.QuickActions, 4)
	assert.Len(t, c.Dashboard.Stats, 4)
	assert.Len(t, c.Dashboard.RecentActivity, 4)
	assert.Len(t, c.Dashboard.RecommendedJobs, 3)
}

func TestDefaultCatalogFields(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	job := c.Match.Jobs[0]
	assert.Equal(t, "Senior Frontend Developer", job.Title)
	assert.Equal(t, "San Francisco, CA", job.Location)
	assert.Equal(t, 95, job.Match)
	assert.True(t, job.Remote)
	assert.Equal(t, []string{"React", "TypeScript", "Next.js"}, job.Skills)

	assert.InDelta(t, 4.9, c.Learn.Courses[0].Rating, 0.001)
	assert.Equal(t, "AI & Machine Learning Engineer", c.Certify.Certifications[4].Title)
	assert.Equal(t, "+3 this month", c.Dashboard.Stats[0].Trend)
	assert.Equal(t, "Where Talent Meets Opportunity", c.Landing.Headline)
}

func TestCoursesIn(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		category string
		want     int
	}{
		{"", 6},
		{CategoryAll, 6},
		{"Development", 1},
		{"AI/ML", 1},
		{"Nonexistent", 0},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Len(t, c.Learn.CoursesIn(tt.category), tt.want)
		})
	}
}

func TestValidSection(t *testing.T) {
	tests := []struct {
		section string
		valid   bool
	}{
		{"learn", true},
		{"certify", true},
		{"match", true},
		{"community", true},
		{"dashboard", false},
		{"landing", false},
		{"", false},
		{"Learn", false},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSection(tt.section))
		})
	}
}

func TestParseCatalogRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"feature section", "landing:\n  features:\n    - {title: X, section: dashboard}\n"},
		{"quick action section", "dashboard:\n  quick_actions:\n    - {label: X, section: nowhere}\n"},
		{"course category", "learn:\n  categories: [All]\n  courses:\n    - {title: X, category: Cooking}\n"},
		{"job match", "match:\n  jobs:\n    - {title: X, match: 140}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalogMalformed(t *testing.T) {
	_, err := ParseCatalog([]byte("learn: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "learn:\n  categories: [All, Baking]\n  courses:\n    - {title: Sourdough 101, category: Baking}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Learn.Courses, 1)
	assert.Equal(t, "Sourdough 101", c.Learn.Courses[0].Title)
}

func TestLoadCatalogEmptyPathUsesEmbedded(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Match.Jobs, 6)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain.LoadCatalog")
}
