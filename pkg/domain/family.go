package domain

// Family identifies one of the five algorithm families. The set is
// closed: each family has its own snapshot shape and executor package,
// selected by tag rather than by interface dispatch.
type Family string

const (
	FamilySorting     Family = "sorting"
	FamilySearching   Family = "searching"
	FamilyPathfinding Family = "pathfinding"
	FamilyTree        Family = "tree"
	FamilyGraph       Family = "graph"
)

// Families returns all known families in presentation order.
func Families() []Family {
	return []Family{
		FamilySorting,
		FamilySearching,
		FamilyPathfinding,
		FamilyTree,
		FamilyGraph,
	}
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	switch f {
	case FamilySorting, FamilySearching, FamilyPathfinding, FamilyTree, FamilyGraph:
		return true
	}
	return false
}

func (f Family) String() string {
	return string(f)
}
