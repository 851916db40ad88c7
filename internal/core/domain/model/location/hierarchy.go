package location

import (
	"fmt"
	"sort"

	"marketplace/internal/pkg/errs"
)

// ErrHierarchyCycle reports a corrupted hierarchy whose parent links loop.
// A cycle can only be introduced by bad data; path reconstruction fails fast
// instead of walking forever.
var ErrHierarchyCycle = fmt.Errorf("location hierarchy contains a cycle")

// Index builds an id lookup over a set of locations. Later duplicates win,
// matching the behavior of an upsert-style registry load.
func Index(all []*Location) map[ID]*Location {
	index := make(map[ID]*Location, len(all))
	for _, loc := range all {
		index[loc.ID()] = loc
	}
	return index
}

// BuildPath reconstructs the ancestor chain of the given location, ordered
// root first and ending at the location itself.
//
// A parent reference that resolves to nothing truncates the walk silently:
// the returned path then starts at the deepest reachable ancestor. An unknown
// starting id yields an ObjectNotFoundError. A cycle in the parent links
// yields ErrHierarchyCycle.
func BuildPath(index map[ID]*Location, id ID) ([]*Location, error) {
	start, ok := index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("locationId", id.String())
	}

	path := []*Location{start}
	visited := map[ID]bool{start.ID(): true}

	current := start
	for current.ParentID() != nil {
		parentID := *current.ParentID()
		if visited[parentID] {
			return nil, fmt.Errorf("%w: %s revisits %s", ErrHierarchyCycle, id, parentID)
		}

		parent, found := index[parentID]
		if !found {
			// Dangling parent reference: keep the partial path.
			break
		}

		path = append([]*Location{parent}, path...)
		visited[parentID] = true
		current = parent
	}

	return path, nil
}

// Children returns the locations whose parent matches parentID, preserving
// input order. A nil parentID selects the root nodes.
func Children(all []*Location, parentID *ID) []*Location {
	children := make([]*Location, 0)
	for _, loc := range all {
		if parentID == nil {
			if loc.IsRoot() {
				children = append(children, loc)
			}
			continue
		}
		if loc.ParentID() != nil && *loc.ParentID() == *parentID {
			children = append(children, loc)
		}
	}
	return children
}

// Stats is a read-only aggregation over the whole hierarchy.
type Stats struct {
	TotalLocations int
	CountByType    map[Type]int
	TopByRevenue   []*Location
}

// topLocationsLimit caps the revenue leaderboard in Stats.
const topLocationsLimit = 5

// ComputeStats aggregates the location set: total count, count per type, and
// the top five locations by revenue. Revenue ties keep their input order.
func ComputeStats(all []*Location) Stats {
	countByType := make(map[Type]int, len(AllTypes()))
	for _, t := range AllTypes() {
		countByType[t] = 0
	}
	for _, loc := range all {
		countByType[loc.Type()]++
	}

	top := make([]*Location, len(all))
	copy(top, all)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue() > top[j].Revenue()
	})
	if len(top) > topLocationsLimit {
		top = top[:topLocationsLimit]
	}

	return Stats{
		TotalLocations: len(all),
		CountByType:    countByType,
		TopByRevenue:   top,
	}
}
