package seed

import (
	"fmt"
	"strings"

	"newtab/internal/domain"
)

// MappedSite is a seed site ready for insertion, with its URL normalized.
type MappedSite struct {
	Name string
	URL  string
	Icon string
}

// MappedGroup is a seed group with its valid sites.
type MappedGroup struct {
	Name  string
	Sites []MappedSite
}

// Mapper validates and normalizes the parsed seed file.
type Mapper struct{}

// NewMapper creates a mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts the seed file into insertable groups. Entries without a
// URL are dropped; a site without a name takes its hostname. An empty
// result is an error so a broken seed file is noticed at startup.
func (m *Mapper) Map(cfg File) ([]MappedGroup, error) {
	groups := make([]MappedGroup, 0, len(cfg.Groups))
	total := 0

	for _, g := range cfg.Groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			continue
		}

		mapped := MappedGroup{Name: name}
		for _, s := range g.Sites {
			url := domain.NormalizeURL(s.URL)
			if url == "" {
				continue
			}
			siteName := strings.TrimSpace(s.Name)
			if siteName == "" {
				siteName = domain.Hostname(url)
			}
			mapped.Sites = append(mapped.Sites, MappedSite{
				Name: siteName,
				URL:  url,
				Icon: s.Icon,
			})
		}

		total += len(mapped.Sites)
		groups = append(groups, mapped)
	}

	if total == 0 {
		return nil, fmt.Errorf("no valid sites found in seed file")
	}
	return groups, nil
}
