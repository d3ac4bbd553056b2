package worldclock

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
)

// zoneDirs are searched for zone names when a lookup needs a case-insensitive match
var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// Resolver turns loosely typed zone names into canonical IANA names
type Resolver struct {
	dirs []string

	once  sync.Once
	zones map[string]string
}

// NewResolver creates a resolver that indexes the system zoneinfo directories,
// plus $ZONEINFO when it names a directory
func NewResolver() *Resolver {
	dirs := zoneDirs
	if env := os.Getenv("ZONEINFO"); env != "" {
		dirs = append([]string{env}, dirs...)
	}
	return &Resolver{dirs: dirs}
}

// Resolve returns the canonical name and location for a zone name,
// matching case-insensitively
func (r *Resolver) Resolve(name string) (string, *time.Location, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return "", nil, false
	}

	candidates := []string{name}
	if canonical, ok := r.index()[strings.ToLower(name)]; ok {
		candidates = append(candidates, canonical)
	}
	candidates = append(candidates, titleSegments(name), strings.ToUpper(name))

	for _, candidate := range candidates {
		location, err := time.LoadLocation(candidate)
		if err == nil {
			return candidate, location, true
		}
	}

	return "", nil, false
}

// Zones lists every indexed zone name
func (r *Resolver) Zones() []string {
	index := r.index()
	zones := make([]string, 0, len(index))
	for _, zone := range index {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	return zones
}

func (r *Resolver) index() map[string]string {
	r.once.Do(func() {
		r.zones = make(map[string]string)
		for _, dir := range r.dirs {
			_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}

				rel, err := filepath.Rel(dir, path)
				if err != nil || !isZoneName(rel) {
					return nil
				}

				rel = filepath.ToSlash(rel)
				if _, seen := r.zones[strings.ToLower(rel)]; !seen {
					r.zones[strings.ToLower(rel)] = rel
				}
				return nil
			})
		}
	})
	return r.zones
}

// isZoneName filters out the data files that live next to the zones
func isZoneName(rel string) bool {
	if rel == "" || !unicode.IsUpper(rune(rel[0])) {
		return false
	}
	if strings.Contains(rel, ".") {
		return false
	}
	for _, prefix := range []string{"posix", "right", "SystemV"} {
		if strings.HasPrefix(rel, prefix) {
			return false
		}
	}
	return true
}

// titleSegments upper-cases the first letter of each path and word segment,
// so america/new_york becomes America/New_York
func titleSegments(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range strings.ToLower(name) {
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		upperNext = r == '/' || r == '_' || r == '-'
	}
	return b.String()
}
