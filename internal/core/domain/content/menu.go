package content

import (
	"sort"
	"strings"
)

// MenuItem is a navigable child page.
type MenuItem struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// MenuSection groups a parent page with its ordered children.
type MenuSection struct {
	Parent     string     `json:"parent"`
	ParentSlug string     `json:"parentSlug"`
	ParentHref string     `json:"parentHref"`
	Pages      []MenuItem `json:"pages"`
}

// BuildMenu organizes pages into a parent/child navigation structure. Pages
// are grouped by parent ID in a single pass, parents and children ordered by
// menu_order. A first child titled "Voir ..." naming its parent becomes the
// section title and leaves the child list. Sections without remaining
// children are dropped.
func BuildMenu(pages []Page) []MenuSection {
	childrenByParent := make(map[int][]Page)
	var parents []Page
	for _, p := range pages {
		if p.Parent == 0 {
			parents = append(parents, p)
		} else {
			childrenByParent[p.Parent] = append(childrenByParent[p.Parent], p)
		}
	}
	sort.SliceStable(parents, func(i, j int) bool { return parents[i].MenuOrder < parents[j].MenuOrder })

	sections := make([]MenuSection, 0, len(parents))
	for _, parent := range parents {
		children := childrenByParent[parent.ID]
		sort.SliceStable(children, func(i, j int) bool { return children[i].MenuOrder < children[j].MenuOrder })

		items := make([]MenuItem, 0, len(children))
		for _, child := range children {
			items = append(items, MenuItem{
				Title: DecodeEntities(child.Title.Rendered),
				Href:  "/" + child.Slug,
			})
		}

		title := DecodeEntities(parent.Title.Rendered)
		if len(items) > 0 {
			first := strings.ToLower(items[0].Title)
			parentLower := strings.ToLower(title)
			if strings.HasPrefix(first, "voir") &&
				(strings.Contains(first, parentLower) || first == "voir "+parentLower) {
				title = items[0].Title
				items = items[1:]
			}
		}
		if len(items) == 0 {
			continue
		}
		sections = append(sections, MenuSection{
			Parent:     title,
			ParentSlug: parent.Slug,
			ParentHref: "/" + parent.Slug,
			Pages:      items,
		})
	}
	return sections
}
