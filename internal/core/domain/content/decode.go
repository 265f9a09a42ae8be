package content

import (
	"regexp"
	"strings"
)

// entityReplacer covers the entity set WordPress emits in rendered text.
// Kept as an explicit list so decoded output matches the upstream content
// exactly.
var entityReplacer = strings.NewReplacer(
	"&#8217;", "'",
	"&#8216;", "'",
	"&#8220;", `"`,
	"&#8221;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&nbsp;", " ",
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// DecodeEntities decodes the known HTML entities in user-visible text.
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

// StripTags removes HTML markup from rendered text, leaving plain text.
func StripTags(html string) string {
	return strings.TrimSpace(strings.ReplaceAll(tagPattern.ReplaceAllString(html, ""), "&nbsp;", " "))
}

// PlainText decodes entities and strips markup in one step, for search
// matching over rendered fields.
func PlainText(html string) string {
	return StripTags(DecodeEntities(html))
}
