// Package dashboard renders the category sections of a store as text.
//
// Category headers and site lines are fasttemplate formats with {{name}}
// style placeholders, configured in the [dashboard] config section.
package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/quick-nav/src/internal/models"
	"github.com/maksimkurb/quick-nav/src/internal/utils"
)

const (
	TMPL_ID          = "id"
	TMPL_NAME        = "name"
	TMPL_ORDER       = "order"
	TMPL_COUNT       = "count"
	TMPL_URL         = "url"
	TMPL_CATEGORY_ID = "category_id"
	TMPL_HOST        = "host"

	startTag = "{{"
	endTag   = "}}"
)

var (
	categoryTags = []string{TMPL_ID, TMPL_NAME, TMPL_ORDER, TMPL_COUNT}
	siteTags     = []string{TMPL_ID, TMPL_NAME, TMPL_URL, TMPL_CATEGORY_ID, TMPL_HOST}
)

// Renderer writes sections using the category and site formats.
type Renderer struct {
	category *fasttemplate.Template
	site     *fasttemplate.Template
}

// NewRenderer compiles both formats. Unknown placeholders are rejected.
func NewRenderer(categoryFormat, siteFormat string) (*Renderer, error) {
	category, err := compile(categoryFormat, categoryTags)
	if err != nil {
		return nil, fmt.Errorf("invalid category format: %w", err)
	}
	site, err := compile(siteFormat, siteTags)
	if err != nil {
		return nil, fmt.Errorf("invalid site format: %w", err)
	}
	return &Renderer{category: category, site: site}, nil
}

func compile(format string, allowed []string) (*fasttemplate.Template, error) {
	t, err := fasttemplate.NewTemplate(format, startTag, endTag)
	if err != nil {
		return nil, err
	}

	var unknown []string
	t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if !contains(allowed, tag) {
			unknown = append(unknown, tag)
		}
		return 0, nil
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown placeholder(s) %s, available: %s",
			strings.Join(unknown, ", "), strings.Join(allowed, ", "))
	}

	return t, nil
}

// Category renders a category header line.
func (r *Renderer) Category(c models.Category, siteCount int) string {
	return r.category.ExecuteString(map[string]interface{}{
		TMPL_ID:    strconv.Itoa(c.ID),
		TMPL_NAME:  c.Name,
		TMPL_ORDER: strconv.Itoa(c.Order),
		TMPL_COUNT: strconv.Itoa(siteCount),
	})
}

// Site renders a site line.
func (r *Renderer) Site(s models.Site) string {
	host, _ := utils.SiteHost(s.URL)
	return r.site.ExecuteString(map[string]interface{}{
		TMPL_ID:          strconv.Itoa(s.ID),
		TMPL_NAME:        s.Name,
		TMPL_URL:         s.URL,
		TMPL_CATEGORY_ID: strconv.Itoa(s.CategoryID),
		TMPL_HOST:        host,
	})
}

// Render writes every section: the category header followed by its sites.
// Orphan sites never appear since sections only contain known categories.
func (r *Renderer) Render(w io.Writer, sections []models.Section) error {
	for _, section := range sections {
		if _, err := fmt.Fprintln(w, r.Category(section.Category, len(section.Sites))); err != nil {
			return err
		}
		for _, site := range section.Sites {
			if _, err := fmt.Fprintln(w, r.Site(site)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FilterByDomain keeps only the sites whose host is domain or one of its
// subdomains. Sections left without sites are dropped.
func FilterByDomain(sections []models.Section, domain string) []models.Section {
	var out []models.Section
	for _, section := range sections {
		var sites []models.Site
		for _, site := range section.Sites {
			host, err := utils.SiteHost(site.URL)
			if err == nil && utils.MatchDomain(host, domain) {
				sites = append(sites, site)
			}
		}
		if len(sites) > 0 {
			out = append(out, models.Section{Category: section.Category, Sites: sites})
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
