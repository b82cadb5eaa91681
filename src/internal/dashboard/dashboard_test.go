package dashboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/maksimkurb/quick-nav/src/internal/models"
)

func testSections() []models.Section {
	categories := []models.Category{
		{ID: 2, Name: "News", Order: 1},
		{ID: 1, Name: "Dev", Order: 2},
	}
	sites := []models.Site{
		{ID: 10, Name: "Go", URL: "https://go.dev", CategoryID: 1},
		{ID: 11, Name: "HN", URL: "https://news.ycombinator.com/", CategoryID: 2},
		{ID: 12, Name: "pkg", URL: "https://pkg.go.dev", CategoryID: 1},
		{ID: 13, Name: "Lost", URL: "https://lost.test", CategoryID: 99},
	}
	return models.BuildSections(categories, sites)
}

func TestRender(t *testing.T) {
	r, err := NewRenderer("[{{order}}] {{name}} ({{count}})", "  {{name}} {{host}}")
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, testSections()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"[1] News (1)",
		"  HN news.ycombinator.com",
		"[2] Dev (2)",
		"  Go go.dev",
		"  pkg pkg.go.dev",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(buf.String(), "Lost") {
		t.Error("Orphan site must not be rendered")
	}
}

func TestNewRenderer_UnknownPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		category string
		site     string
	}{
		{"url in category", "{{name}} {{url}}", "{{name}}"},
		{"count in site", "{{name}}", "{{count}}"},
		{"unclosed tag", "{{name", "{{name}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRenderer(tt.category, tt.site); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestSite_AllPlaceholders(t *testing.T) {
	r, err := NewRenderer("{{name}}", "{{id}}|{{name}}|{{url}}|{{category_id}}|{{host}}")
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	got := r.Site(models.Site{ID: 3, Name: "Router", URL: "http://nav.lan:8080/", CategoryID: 7})
	if got != "3|Router|http://nav.lan:8080/|7|nav.lan" {
		t.Errorf("Site() = %q", got)
	}
}

func TestFilterByDomain(t *testing.T) {
	got := FilterByDomain(testSections(), "go.dev")

	if len(got) != 1 || got[0].Category.Name != "Dev" {
		t.Fatalf("Expected only the Dev section, got %+v", got)
	}
	if len(got[0].Sites) != 2 {
		t.Errorf("Expected go.dev and pkg.go.dev, got %+v", got[0].Sites)
	}

	if got := FilterByDomain(testSections(), "example.com"); len(got) != 0 {
		t.Errorf("Expected no sections, got %+v", got)
	}
}
