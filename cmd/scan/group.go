package scan

import (
	"sort"
	"strings"

	"github.com/farzaaaan/dupnames/cmd/models"
	"github.com/farzaaaan/dupnames/cmd/utils"
)

// BaseName returns everything after the last '/' or '\' in path, and whether
// that name is eligible for grouping, i.e. contains a '.'.
func BaseName(path string) (string, bool) {
	name := path[strings.LastIndexAny(path, `/\`)+1:]
	return name, strings.Contains(name, ".")
}

// Table maps a base name to the paths carrying it, in traversal order.
type Table map[string][]string

// Names returns the base names of t in lexical order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Groups flattens t into groups sorted by base name.
func (t Table) Groups() []models.Group {
	groups := make([]models.Group, 0, len(t))
	for _, name := range t.Names() {
		groups = append(groups, models.Group{Name: name, Paths: t[name]})
	}
	return groups
}

// Grouper accumulates paths by base name.
type Grouper struct {
	ignore utils.Ignorer
	table  Table

	Ignored int
	Unnamed int
}

func NewGrouper(ignore utils.Ignorer) *Grouper {
	return &Grouper{ignore: ignore, table: make(Table)}
}

func (g *Grouper) Add(path string) {
	if g.ignore != nil && g.ignore.Match(path) {
		g.Ignored++
		return
	}
	name, ok := BaseName(path)
	if !ok {
		g.Unnamed++
		return
	}
	g.table[name] = append(g.table[name], path)
}

// Duplicates returns the entries holding two or more paths.
func (g *Grouper) Duplicates() Table {
	dups := make(Table)
	for name, paths := range g.table {
		if len(paths) > 1 {
			dups[name] = paths
		}
	}
	return dups
}
