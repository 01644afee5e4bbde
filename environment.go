package tankworld

import "sort"

// EntityID is a process-unique, monotonically increasing identifier. Every
// cross-entity reference goes through an EntityID resolved via the
// Environment, never a direct pointer — this eliminates cycles and
// dangling references when entities die mid-tick (spec.md §9).
type EntityID uint64

// EntityKind tags what kind of entity an EntityID refers to, so neighbor
// queries can filter without resolving the full entity first.
type EntityKind int

const (
	KindFish EntityKind = iota
	KindPlant
	KindFood
	KindCrab
)

func (k EntityKind) String() string {
	switch k {
	case KindFish:
		return "fish"
	case KindPlant:
		return "plant"
	case KindFood:
		return "food"
	case KindCrab:
		return "crab"
	default:
		return "unknown"
	}
}

type indexedEntity struct {
	id   EntityID
	kind EntityKind
	pos  Vector2
}

// Environment owns the coarse uniform grid used for nearest-neighbor
// queries, per spec.md §4.2. Cell size is max agent vision / 2, bounded to
// a sane minimum so a misconfigured vision range of 0 cannot produce an
// unbounded number of cells.
type Environment struct {
	width, height float64
	cellSize      float64
	cells         map[[2]int][]EntityID
	entities      map[EntityID]indexedEntity
}

// NewEnvironment builds an environment for the given arena and the vision
// range used to size grid cells.
func NewEnvironment(width, height, maxVisionRange float64) *Environment {
	cellSize := maxVisionRange / 2
	if cellSize < 1 {
		cellSize = 1
	}
	return &Environment{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    make(map[[2]int][]EntityID),
		entities: make(map[EntityID]indexedEntity),
	}
}

func (e *Environment) cellOf(pos Vector2) [2]int {
	return [2]int{int(pos.X / e.cellSize), int(pos.Y / e.cellSize)}
}

// Insert registers a new entity at pos. O(1) amortized.
func (e *Environment) Insert(id EntityID, kind EntityKind, pos Vector2) {
	pos = pos.Clamp(e.width, e.height)
	cell := e.cellOf(pos)
	e.cells[cell] = append(e.cells[cell], id)
	e.entities[id] = indexedEntity{id: id, kind: kind, pos: pos}
}

// Remove drops an entity from the index. O(1) amortized.
func (e *Environment) Remove(id EntityID) {
	ent, ok := e.entities[id]
	if !ok {
		return
	}
	cell := e.cellOf(ent.pos)
	bucket := e.cells[cell]
	for i, other := range bucket {
		if other == id {
			bucket[i] = bucket[len(bucket)-1]
			e.cells[cell] = bucket[:len(bucket)-1]
			break
		}
	}
	if len(e.cells[cell]) == 0 {
		delete(e.cells, cell)
	}
	delete(e.entities, id)
}

// Update moves an already-registered entity to a new position.
func (e *Environment) Update(id EntityID, newPos Vector2) {
	ent, ok := e.entities[id]
	if !ok {
		return
	}
	e.Remove(id)
	e.Insert(id, ent.kind, newPos)
}

// Reset clears the index entirely. Called at the start of the ENVIRONMENT
// phase before re-inserting every entity's committed position, per
// spec.md §4.6 step 3.
func (e *Environment) Reset() {
	e.cells = make(map[[2]int][]EntityID)
	e.entities = make(map[EntityID]indexedEntity)
}

// neighborCells yields cells overlapping a circle of the given radius
// centered at pos.
func (e *Environment) neighborCells(pos Vector2, radius float64) [][2]int {
	minCell := e.cellOf(Vector2{pos.X - radius, pos.Y - radius})
	maxCell := e.cellOf(Vector2{pos.X + radius, pos.Y + radius})
	var out [][2]int
	for cx := minCell[0]; cx <= maxCell[0]; cx++ {
		for cy := minCell[1]; cy <= maxCell[1]; cy++ {
			out = append(out, [2]int{cx, cy})
		}
	}
	return out
}

// Neighbors returns every entity of the given kind whose cell overlaps a
// circle of radius around pos, sorted by ascending EntityId to guarantee
// deterministic tie-breaking downstream (spec.md §4.2). filterKinds is a
// set of acceptable kinds; pass nil/empty to match every kind. Callers
// still must perform precise distance checks — this returns candidates
// from overlapping cells, not a precise radius query.
func (e *Environment) Neighbors(pos Vector2, radius float64, filterKinds ...EntityKind) []EntityID {
	allow := make(map[EntityKind]bool, len(filterKinds))
	for _, k := range filterKinds {
		allow[k] = true
	}
	seen := make(map[EntityID]bool)
	var out []EntityID
	for _, cell := range e.neighborCells(pos, radius) {
		for _, id := range e.cells[cell] {
			if seen[id] {
				continue
			}
			ent := e.entities[id]
			if len(allow) > 0 && !allow[ent.kind] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Nearest returns the closest entity of the allowed kinds to pos, breaking
// ties by ascending EntityId. It scans every indexed entity, with no
// distance limit, and returns (0, false) only if none of the allowed kinds
// is indexed.
func (e *Environment) Nearest(pos Vector2, filterKinds ...EntityKind) (EntityID, bool) {
	allow := make(map[EntityKind]bool, len(filterKinds))
	for _, k := range filterKinds {
		allow[k] = true
	}

	var bestID EntityID
	bestDist := -1.0
	found := false
	for id, ent := range e.entities {
		if len(allow) > 0 && !allow[ent.kind] {
			continue
		}
		d := pos.DistanceTo(ent.pos)
		if !found || d < bestDist || (d == bestDist && id < bestID) {
			bestID = id
			bestDist = d
			found = true
		}
	}
	return bestID, found
}

// PositionOf returns the last committed position of id, if tracked.
func (e *Environment) PositionOf(id EntityID) (Vector2, bool) {
	ent, ok := e.entities[id]
	return ent.pos, ok
}
