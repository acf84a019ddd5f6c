package pathfind

import (
	"container/heap"

	"github.com/lawnchairsociety/wildlands/internal/geom"
	"github.com/lawnchairsociety/wildlands/internal/terrain"
)

// FindPath runs A* from start to goal over the 8-connected grid restricted
// to cells present in m. Step cost is Euclidean distance times the movement
// multiplier of the cell being entered; the heuristic is plain Euclidean
// distance, which underestimates because every multiplier is >= 1.
//
// The returned path runs start to goal inclusive. ok is false when the goal
// is unreachable (open set exhausted); callers are expected to degrade to a
// simpler route rather than fail.
func FindPath(m terrain.Map, start, goal geom.Grid) (path []geom.Grid, ok bool) {
	if _, exists := m[start]; !exists {
		return nil, false
	}
	if _, exists := m[goal]; !exists {
		return nil, false
	}
	if start == goal {
		return []geom.Grid{start}, true
	}

	open := &openSet{}
	heap.Init(open)

	gScore := map[geom.Grid]float64{start: 0}
	cameFrom := make(map[geom.Grid]geom.Grid)
	closed := make(map[geom.Grid]bool)

	open.push(start, start.DistanceTo(goal))

	for open.Len() > 0 {
		current := heap.Pop(open).(*node).pos
		if current == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, nb := range current.Neighbors() {
			typ, exists := m[nb]
			if !exists || closed[nb] {
				continue
			}
			tentative := gScore[current] + current.DistanceTo(nb)*terrain.MovementCost(typ)
			if best, seen := gScore[nb]; seen && tentative >= best {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = current
			open.push(nb, tentative+nb.DistanceTo(goal))
		}
	}

	return nil, false
}

// reconstruct walks predecessor links back from the goal and reverses them.
func reconstruct(cameFrom map[geom.Grid]geom.Grid, start, goal geom.Grid) []geom.Grid {
	var reversed []geom.Grid
	for pos := goal; ; {
		reversed = append(reversed, pos)
		if pos == start {
			break
		}
		pos = cameFrom[pos]
	}

	path := make([]geom.Grid, len(reversed))
	for i, pos := range reversed {
		path[len(reversed)-1-i] = pos
	}
	return path
}

// node is an open-set entry. order is a monotonic insertion counter so that
// equal f-scores pop in discovery order, keeping path shape stable across
// runs.
type node struct {
	pos   geom.Grid
	f     float64
	order int
}

type openSet struct {
	nodes []*node
	seq   int
}

func (o *openSet) push(pos geom.Grid, f float64) {
	o.seq++
	heap.Push(o, &node{pos: pos, f: f, order: o.seq})
}

func (o *openSet) Len() int { return len(o.nodes) }

func (o *openSet) Less(i, j int) bool {
	if o.nodes[i].f != o.nodes[j].f {
		return o.nodes[i].f < o.nodes[j].f
	}
	return o.nodes[i].order < o.nodes[j].order
}

func (o *openSet) Swap(i, j int) {
	o.nodes[i], o.nodes[j] = o.nodes[j], o.nodes[i]
}

func (o *openSet) Push(x any) {
	o.nodes = append(o.nodes, x.(*node))
}

func (o *openSet) Pop() any {
	n := o.nodes[len(o.nodes)-1]
	o.nodes = o.nodes[:len(o.nodes)-1]
	return n
}
