package content

import (
	"strings"
	"sync"
)

// Color variants in order of visual distinction. Each category keeps the
// variant it is first assigned for the lifetime of the process.
var colorVariants = []string{
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5", "primary", "secondary",
}

var (
	colorMu        sync.Mutex
	categoryColors = map[string]string{}
	nextColor      int
)

// CategoryVariant returns the stable color variant for a category name.
func CategoryVariant(category string) string {
	if category == "" {
		return colorVariants[0]
	}
	key := strings.TrimSpace(strings.ToLower(category))

	colorMu.Lock()
	defer colorMu.Unlock()
	if v, ok := categoryColors[key]; ok {
		return v
	}
	v := colorVariants[nextColor%len(colorVariants)]
	categoryColors[key] = v
	nextColor++
	return v
}
