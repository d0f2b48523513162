// Package registry catalogs the runnable algorithms: family, slug,
// display name and an info page in markdown. Hosts use it to populate
// selection menus and to validate run requests before building a
// controller.
package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/strobe/pkg/algorithms/graph"
	"github.com/aretw0/strobe/pkg/algorithms/pathfinding"
	"github.com/aretw0/strobe/pkg/algorithms/searching"
	"github.com/aretw0/strobe/pkg/algorithms/sorting"
	"github.com/aretw0/strobe/pkg/algorithms/tree"
	"github.com/aretw0/strobe/pkg/domain"
)

// Entry describes one runnable algorithm.
type Entry struct {
	Family      domain.Family
	Slug        string
	DisplayName string

	// Info is the algorithm's description in markdown, rendered by the
	// info command.
	Info string
}

type key struct {
	family domain.Family
	slug   string
}

// Registry is a lookup table of entries. The zero value is unusable;
// call New or Default.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[key]int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{index: make(map[key]int)}
}

// Register adds an entry, overwriting any entry with the same family
// and slug.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{family: entry.Family, slug: entry.Slug}
	if i, ok := r.index[k]; ok {
		r.entries[i] = entry
		return
	}
	r.index[k] = len(r.entries)
	r.entries = append(r.entries, entry)
}

// Lookup finds an entry by family and slug.
func (r *Registry) Lookup(family domain.Family, slug string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.index[key{family: family, slug: slug}]; ok {
		return r.entries[i], nil
	}
	return Entry{}, fmt.Errorf("%w: %s/%s", domain.ErrUnknownAlgorithm, family, slug)
}

// List returns the entries of one family in registration order. An
// empty family returns every entry.
func (r *Registry) List(family domain.Family) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, entry := range r.entries {
		if family == "" || entry.Family == family {
			out = append(out, entry)
		}
	}
	return out
}

// Default returns a registry preloaded with every built-in algorithm.
func Default() *Registry {
	r := New()

	for _, a := range sorting.Algorithms() {
		r.Register(Entry{
			Family:      domain.FamilySorting,
			Slug:        string(a),
			DisplayName: a.DisplayName(),
			Info:        sortingInfo[a],
		})
	}
	for _, a := range searching.Algorithms() {
		r.Register(Entry{
			Family:      domain.FamilySearching,
			Slug:        string(a),
			DisplayName: a.DisplayName(),
			Info:        searchingInfo[a],
		})
	}
	for _, a := range pathfinding.Algorithms() {
		r.Register(Entry{
			Family:      domain.FamilyPathfinding,
			Slug:        string(a),
			DisplayName: a.DisplayName(),
			Info:        pathfindingInfo[a],
		})
	}
	for _, k := range []tree.Kind{tree.BST, tree.AVL} {
		r.Register(Entry{
			Family:      domain.FamilyTree,
			Slug:        string(k),
			DisplayName: k.DisplayName(),
			Info:        treeInfo[string(k)],
		})
	}
	for _, k := range []tree.HeapKind{tree.MinHeap, tree.MaxHeap} {
		r.Register(Entry{
			Family:      domain.FamilyTree,
			Slug:        string(k),
			DisplayName: k.DisplayName(),
			Info:        treeInfo[string(k)],
		})
	}
	for _, a := range graph.Algorithms() {
		r.Register(Entry{
			Family:      domain.FamilyGraph,
			Slug:        string(a),
			DisplayName: a.DisplayName(),
			Info:        graphInfo[a],
		})
	}
	return r
}
