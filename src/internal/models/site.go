package models

// Site is a named bookmark belonging to one category.
type Site struct {
	ID         int    `json:"id"`
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url" validate:"required"`
	CategoryID int    `json:"category_id"`
}

// SitesInCategory returns the sites referencing categoryID, in their original order.
func SitesInCategory(sites []Site, categoryID int) []Site {
	var out []Site
	for _, s := range sites {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// OrphanSites returns the sites whose category is not among categories.
// Orphans are fetched but never rendered under any section.
func OrphanSites(categories []Category, sites []Site) []Site {
	known := make(map[int]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}

	var out []Site
	for _, s := range sites {
		if _, ok := known[s.CategoryID]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// SiteByID returns the site with the given id.
func SiteByID(sites []Site, id int) (Site, bool) {
	for _, s := range sites {
		if s.ID == id {
			return s, true
		}
	}
	return Site{}, false
}

// CloneSites returns a copy of the slice. A nil input yields an empty slice.
func CloneSites(sites []Site) []Site {
	out := make([]Site, len(sites))
	copy(out, sites)
	return out
}

// Section is a category together with the sites displayed under it.
type Section struct {
	Category Category
	Sites    []Site
}

// BuildSections groups sites under their categories, following the order of
// the categories slice. Orphan sites are left out.
func BuildSections(categories []Category, sites []Site) []Section {
	sections := make([]Section, 0, len(categories))
	for _, c := range categories {
		sections = append(sections, Section{
			Category: c,
			Sites:    SitesInCategory(sites, c.ID),
		})
	}
	return sections
}
