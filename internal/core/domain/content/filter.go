package content

import (
	"sort"
	"strings"
)

// FilterState holds the active filter selections for a collection view.
// Empty string means the facet is unset.
type FilterState struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Season   string `json:"season,omitempty"`
	Partner  string `json:"partner,omitempty"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Season == "" && f.Partner == ""
}

func (e *Event) matchesSearch(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(DecodeEntities(e.Title.Rendered)), q) {
		return true
	}
	if e.Excerpt != nil && strings.Contains(strings.ToLower(PlainText(e.Excerpt.Rendered)), q) {
		return true
	}
	if e.ACF != nil && e.ACF.Description != "" &&
		strings.Contains(strings.ToLower(PlainText(e.ACF.Description)), q) {
		return true
	}
	return false
}

func (e *Event) matchesPartner(partner string) bool {
	if partner == "" {
		return true
	}
	if e.ACF == nil {
		return false
	}
	for _, p := range e.ACF.PartnerDetails {
		if DecodeEntities(p.Title) == partner {
			return true
		}
	}
	return false
}

func (e *Event) matches(f FilterState) bool {
	if !e.matchesSearch(f.Search) {
		return false
	}
	if f.Category != "" && !e.Embedded.HasTerm(TaxonomyCategory, f.Category) {
		return false
	}
	if f.Season != "" && !e.Embedded.HasTerm(TaxonomySeason, f.Season) {
		return false
	}
	return e.matchesPartner(f.Partner)
}

// FilterEvents applies the filter state as a conjunction and returns a new
// slice sorted by effective date, most recent first. The input is never
// mutated.
func FilterEvents(events []Event, f FilterState) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.matches(f) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveDate().After(out[j].EffectiveDate())
	})
	return out
}

func distinctSorted(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func eventTermNames(events []Event, taxonomy string) []string {
	var names []string
	for i := range events {
		names = append(names, events[i].Embedded.TermNames(taxonomy)...)
	}
	return names
}

func eventPartnerNames(events []Event) []string {
	var names []string
	for i := range events {
		if events[i].ACF == nil {
			continue
		}
		for _, p := range events[i].ACF.PartnerDetails {
			names = append(names, DecodeEntities(p.Title))
		}
	}
	return names
}

// EventCategories returns the distinct decoded category names across events.
func EventCategories(events []Event) []string {
	return distinctSorted(eventTermNames(events, TaxonomyCategory))
}

// EventSeasons returns the distinct decoded season names across events.
func EventSeasons(events []Event) []string {
	return distinctSorted(eventTermNames(events, TaxonomySeason))
}

// EventPartners returns the distinct decoded partner titles across events.
func EventPartners(events []Event) []string {
	return distinctSorted(eventPartnerNames(events))
}

// Facets lists, per facet, the values still selectable given the other
// active filters. Options outside these sets would yield an empty result and
// should be rendered disabled rather than removed.
type Facets struct {
	Categories []string `json:"categories"`
	Seasons    []string `json:"seasons"`
	Partners   []string `json:"partners"`
}

// AvailableFacets recomputes each facet's candidate set by applying every
// other active filter (the facet's own selection excluded) to the full
// collection.
func AvailableFacets(events []Event, f FilterState) Facets {
	forCategories := FilterEvents(events, FilterState{Search: f.Search, Season: f.Season, Partner: f.Partner})
	forSeasons := FilterEvents(events, FilterState{Search: f.Search, Category: f.Category, Partner: f.Partner})
	forPartners := FilterEvents(events, FilterState{Search: f.Search, Category: f.Category, Season: f.Season})
	return Facets{
		Categories: EventCategories(forCategories),
		Seasons:    EventSeasons(forSeasons),
		Partners:   EventPartners(forPartners),
	}
}

// FilterPosts filters posts by free-text search and category, sorted by
// publish date descending. The input is never mutated.
func FilterPosts(posts []Post, search, category string) []Post {
	q := strings.ToLower(search)
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if q != "" &&
			!strings.Contains(strings.ToLower(DecodeEntities(p.Title.Rendered)), q) &&
			!strings.Contains(strings.ToLower(PlainText(p.Excerpt.Rendered)), q) {
			continue
		}
		if category != "" && !p.Embedded.HasTerm(TaxonomyCategory, category) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return PublishTime(out[i].Date).After(PublishTime(out[j].Date))
	})
	return out
}

// PostCategories returns the distinct decoded category names across posts.
func PostCategories(posts []Post) []string {
	var names []string
	for i := range posts {
		names = append(names, posts[i].Embedded.TermNames(TaxonomyCategory)...)
	}
	return distinctSorted(names)
}

// UntypedPartnerGroup labels partners that carry no partner-type term.
const UntypedPartnerGroup = "Sans catégorie"

// PartnerGroup is a set of partners sharing a partner-type term.
type PartnerGroup struct {
	Type     string    `json:"type"`
	Partners []Partner `json:"partners"`
}

// GroupPartners filters partners by free-text search over title and
// description, then groups the survivors by their decoded partner-type
// names, sorted by group name. Empty groups are removed. A partner with
// several types appears in each.
func GroupPartners(partners []Partner, search string) []PartnerGroup {
	q := strings.ToLower(search)
	groups := map[string][]Partner{}
	for _, p := range partners {
		if q != "" {
			title := strings.ToLower(DecodeEntities(p.Title.Rendered))
			desc := ""
			if p.ACF != nil {
				desc = strings.ToLower(p.ACF.Description)
			}
			if !strings.Contains(title, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		types := p.Embedded.TermNames(TaxonomyPartnerType)
		if len(types) == 0 {
			types = []string{UntypedPartnerGroup}
		}
		for _, t := range types {
			groups[t] = append(groups[t], p)
		}
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]PartnerGroup, 0, len(names))
	for _, name := range names {
		out = append(out, PartnerGroup{Type: name, Partners: groups[name]})
	}
	return out
}
