package content

import (
	"encoding/json"
	"time"
)

// Rendered wraps the WordPress REST "rendered" text envelope.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Media is an ACF media attachment.
type Media struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
	ID    int    `json:"ID,omitempty"`
}

// Link is an ACF link field.
type Link struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Target string `json:"target"`
}

// Term is an embedded taxonomy classification attached to a content item.
type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

// FeaturedMedia is an embedded wp:featuredmedia entry.
type FeaturedMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text"`
}

// Embedded carries the _embed payload of a content item. Terms arrive as a
// list of lists, one inner list per taxonomy.
type Embedded struct {
	FeaturedMedia []FeaturedMedia `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Term        `json:"wp:term,omitempty"`
}

// flatTerms flattens the nested wp:term arrays.
func (e *Embedded) flatTerms() []Term {
	if e == nil {
		return nil
	}
	var out []Term
	for _, group := range e.Terms {
		out = append(out, group...)
	}
	return out
}

// TermNames returns the decoded names of all embedded terms of the given
// taxonomy.
func (e *Embedded) TermNames(taxonomy string) []string {
	var names []string
	for _, t := range e.flatTerms() {
		if t.Taxonomy == taxonomy {
			names = append(names, DecodeEntities(t.Name))
		}
	}
	return names
}

// HasTerm reports whether an embedded term of the given taxonomy carries the
// given decoded name.
func (e *Embedded) HasTerm(taxonomy, name string) bool {
	for _, t := range e.flatTerms() {
		if t.Taxonomy == taxonomy && DecodeEntities(t.Name) == name {
			return true
		}
	}
	return false
}

// Taxonomy slugs used by the content source.
const (
	TaxonomyCategory    = "category"
	TaxonomySeason      = "saison-culturelle"
	TaxonomyPartnerType = "type-de-partenaire"
)

// PageACF holds the custom fields of a page.
type PageACF struct {
	Subtitle    string  `json:"sous-titre,omitempty"`
	Background  *Media  `json:"background,omitempty"`
	Content     string  `json:"contenu,omitempty"`
	Images      []Media `json:"images,omitempty"`
	Gallery     []Media `json:"galerie,omitempty"`
	HeroGallery []Media `json:"hero_gallery,omitempty"`
}

// Page is a WordPress page. Parent is 0 for top-level pages.
type Page struct {
	ID        int       `json:"id"`
	Title     Rendered  `json:"title"`
	Link      string    `json:"link"`
	Slug      string    `json:"slug"`
	Parent    int       `json:"parent"`
	MenuOrder int       `json:"menu_order"`
	Content   *Rendered `json:"content,omitempty"`
	ACF       *PageACF  `json:"acf,omitempty"`
}

// PartnerDetail is a partner reference resolved to its essential fields.
type PartnerDetail struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// EventACF holds the custom fields of an event. Date fields are
// French-formatted DD/MM/YYYY strings. DisplayPage has shifted shape over
// time in the source (string, object with url, or array of either), so it is
// kept raw and accessed through DisplayPageURLs.
type EventACF struct {
	Subtitle        string          `json:"sous-titre,omitempty"`
	Background      *Media          `json:"background,omitempty"`
	DisplayPage     json.RawMessage `json:"page_daffichage,omitempty"`
	Description     string          `json:"descriptif,omitempty"`
	Images          []Media         `json:"images,omitempty"`
	PartnerRefs     []string        `json:"partenaires_associes,omitempty"`
	PartnerDetails  []PartnerDetail `json:"partenaires_details,omitempty"`
	OneOff          bool            `json:"recurrent_ou_ponctuel,omitempty"`
	StartDate       string          `json:"date_de_debut,omitempty"`
	EndDate         string          `json:"date_de_fin,omitempty"`
	StartTime       string          `json:"heure_de_debut,omitempty"`
	EndTime         string          `json:"heure_de_fin,omitempty"`
	Weekday         string          `json:"jour,omitempty"`
	Time            string          `json:"heure,omitempty"`
	DurationHours   json.Number     `json:"duree_en_heures,omitempty"`
	PeriodStart     string          `json:"debut_de_periode,omitempty"`
	PeriodEnd       string          `json:"fin_de_periode,omitempty"`
}

// DisplayPageURLs extracts the display-page URLs regardless of the stored
// shape.
func (a *EventACF) DisplayPageURLs() []string {
	if a == nil || len(a.DisplayPage) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(a.DisplayPage, &s); err == nil {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(a.DisplayPage, &obj); err == nil && obj.URL != "" {
		return []string{obj.URL}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(a.DisplayPage, &raws); err != nil {
		return nil
	}
	var urls []string
	for _, raw := range raws {
		var e string
		if err := json.Unmarshal(raw, &e); err == nil {
			if e != "" {
				urls = append(urls, e)
			}
			continue
		}
		var eo struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(raw, &eo); err == nil && eo.URL != "" {
			urls = append(urls, eo.URL)
		}
	}
	return urls
}

// Event is a WordPress "evenement" custom post.
type Event struct {
	ID            int       `json:"id"`
	Title         Rendered  `json:"title"`
	Date          string    `json:"date"`
	Link          string    `json:"link"`
	Slug          string    `json:"slug"`
	Excerpt       *Rendered `json:"excerpt,omitempty"`
	ACF           *EventACF `json:"acf,omitempty"`
	FeaturedMedia int       `json:"featured_media,omitempty"`
	Seasons       []int     `json:"saison-culturelle,omitempty"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// PostACF holds the custom fields of a post.
type PostACF struct {
	Subtitle   string `json:"sous-titre,omitempty"`
	Background *Media `json:"background,omitempty"`
}

// Post is a WordPress blog post.
type Post struct {
	ID            int       `json:"id"`
	Title         Rendered  `json:"title"`
	Date          string    `json:"date"`
	Link          string    `json:"link"`
	Slug          string    `json:"slug"`
	Excerpt       Rendered  `json:"excerpt"`
	Content       Rendered  `json:"content"`
	FeaturedMedia int       `json:"featured_media,omitempty"`
	Categories    []int     `json:"categories,omitempty"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
	ACF           *PostACF  `json:"acf,omitempty"`
}

// TeamMemberACF holds the custom fields of a team member.
type TeamMemberACF struct {
	Role    string `json:"role,omitempty"`
	MiniBio string `json:"mini_bio,omitempty"`
	Links   []struct {
		Link Link `json:"lien"`
	} `json:"liens,omitempty"`
}

// TeamMember is a WordPress "membre" custom post.
type TeamMember struct {
	ID            int            `json:"id"`
	Title         Rendered       `json:"title"`
	Link          string         `json:"link"`
	Slug          string         `json:"slug"`
	FeaturedMedia int            `json:"featured_media,omitempty"`
	ACF           *TeamMemberACF `json:"acf,omitempty"`
	Embedded      *Embedded      `json:"_embedded,omitempty"`
}

// PartnerACF holds the custom fields of a partner.
type PartnerACF struct {
	Description string  `json:"descriptif,omitempty"`
	Website     *Link   `json:"lien_vers_le_site,omitempty"`
	Images      []Media `json:"images,omitempty"`
}

// Partner is a WordPress "partenaire" custom post.
type Partner struct {
	ID            int         `json:"id"`
	Title         Rendered    `json:"title"`
	Link          string      `json:"link"`
	Slug          string      `json:"slug"`
	FeaturedMedia int         `json:"featured_media,omitempty"`
	ACF           *PartnerACF `json:"acf,omitempty"`
	Types         []int       `json:"type-de-partenaire,omitempty"`
	Embedded      *Embedded   `json:"_embedded,omitempty"`
}

// SiteOptions are the global site settings served by the custom
// site/v1/reglages endpoint.
type SiteOptions struct {
	SiteTitle       string `json:"titre_du_site,omitempty"`
	SiteDescription string `json:"description_du_site,omitempty"`
	SiteLogo        *Media `json:"logo_du_site,omitempty"`
}

// wpPublishLayout is the timezone-less timestamp format of the REST "date"
// field.
const wpPublishLayout = "2006-01-02T15:04:05"

// PublishTime parses a REST publish date. The zero time is returned for
// missing or malformed values.
func PublishTime(date string) time.Time {
	if date == "" {
		return time.Time{}
	}
	if t, err := time.Parse(wpPublishLayout, date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	return time.Time{}
}
