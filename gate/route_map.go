package gate

import "strings"

// Rule maps a route path prefix to the permission required to use it.
type Rule struct {
	Prefix     string
	Permission Permission
}

// RouteMap is the declarative authorization policy surface: a static mapping
// from route prefix to required permission. It is data, not code; declare it
// once at startup and check it in a single guard stage.
//
// Matching is longest-prefix: "/notes/update" wins over "/notes" for the path
// "/notes/update/42". Paths with no matching prefix require no permission.
type RouteMap struct {
	rules []Rule
}

// NewRouteMap builds a route map from the given rules.
// Rule order does not matter; the longest matching prefix always wins.
func NewRouteMap(rules ...Rule) *RouteMap {
	return &RouteMap{rules: rules}
}

// Required returns the permission required for the given request path, and
// whether any rule matched. A false second return means pass-through.
func (m *RouteMap) Required(path string) (Permission, bool) {
	var best *Rule
	for i := range m.rules {
		r := &m.rules[i]
		if !strings.HasPrefix(path, r.Prefix) {
			continue
		}
		if best == nil || len(r.Prefix) > len(best.Prefix) {
			best = r
		}
	}
	if best == nil {
		return "", false
	}
	return best.Permission, true
}

// Permissions returns every permission referenced by the map, deduplicated.
// Used at startup to warn about permissions no role grants.
func (m *RouteMap) Permissions() []Permission {
	seen := make(map[Permission]bool)
	var out []Permission
	for _, r := range m.rules {
		if !seen[r.Permission] {
			seen[r.Permission] = true
			out = append(out, r.Permission)
		}
	}
	return out
}
