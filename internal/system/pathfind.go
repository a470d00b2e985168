package system

import (
	"container/heap"
	"math"
	"winternight/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Walls is the read-only grid view the pathfinder searches.
type Walls interface {
	Walkable(c gamemap.Cell) bool
}

// pathNode is an entry in the A* open set.
type pathNode struct {
	cell  gamemap.Cell
	g     int // steps from start
	f     int // g + heuristic
	seq   int // insertion order, breaks f ties deterministically
	index int
}

// pathQueue implements heap.Interface for A*.
type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }
func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}
func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *pathQueue) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}
func (pq *pathQueue) Pop() any {
	old := *pq
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*pq = old[:len(old)-1]
	return n
}

// FindPath returns a shortest 4-directional path from from to to, avoiding
// walls and the blocked cell (pass gamemap.NoCell to block nothing). The path
// includes both endpoints and cost is its number of steps. ok is false when
// no route exists, which callers treat as "wait and retry".
func FindPath(grid Walls, from, to, blocked gamemap.Cell) (path []gamemap.Cell, cost int, ok bool) {
	if from == to {
		return []gamemap.Cell{from}, 0, true
	}
	if to == blocked || !grid.Walkable(to) {
		return nil, 0, false
	}

	open := &pathQueue{}
	heap.Init(open)
	closed := mapset.New[gamemap.Cell]()
	gScore := map[gamemap.Cell]int{from: 0}
	cameFrom := make(map[gamemap.Cell]gamemap.Cell)

	seq := 0
	heap.Push(open, &pathNode{cell: from, f: heuristic(from, to)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if closed.Has(cur.cell) {
			continue // stale duplicate
		}
		if cur.cell == to {
			return reconstruct(cameFrom, from, to), cur.g, true
		}
		closed.Put(cur.cell)

		for _, n := range neighbours(cur.cell) {
			if n == blocked || closed.Has(n) || !grid.Walkable(n) {
				continue
			}
			g := cur.g + 1
			if old, seen := gScore[n]; seen && g >= old {
				continue
			}
			gScore[n] = g
			cameFrom[n] = cur.cell
			seq++
			heap.Push(open, &pathNode{cell: n, g: g, f: g + heuristic(n, to), seq: seq})
		}
	}
	return nil, 0, false
}

// neighbours lists the 4-connected cells of c: up, down, left, right.
func neighbours(c gamemap.Cell) [4]gamemap.Cell {
	return [4]gamemap.Cell{c.Add(0, -1), c.Add(0, 1), c.Add(-1, 0), c.Add(1, 0)}
}

// heuristic is the Euclidean distance truncated to an int, which never
// overestimates the remaining step count.
func heuristic(a, b gamemap.Cell) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

func reconstruct(cameFrom map[gamemap.Cell]gamemap.Cell, from, to gamemap.Cell) []gamemap.Cell {
	path := []gamemap.Cell{to}
	for cur := to; cur != from; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
