package navigation

import (
	"net/url"
	"strings"
)

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var humanize = strings.NewReplacer("-", " ", "_", " ")

// Breadcrumbs decomposes path into cumulative prefixes. Empty segments are
// dropped, so "/", "" and "//" all yield an empty trail.
func Breadcrumbs(path string) []Crumb {
	crumbs := []Crumb{}
	prefix := ""
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		prefix += "/" + segment
		label := humanize.Replace(segment)
		if decoded, err := url.PathUnescape(label); err == nil {
			label = decoded
		}
		crumbs = append(crumbs, Crumb{Label: label, Path: prefix})
	}
	return crumbs
}
