// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// Linked reports whether the placed tiles at from and from.Neighbor(dir) both
// have a connectable edge facing each other.
func Linked(board BoardReader, from Hex, dir int) bool {
	a, ok := board.Get(from)
	if !ok || !a.Tile.HasConnectableEdge(LocalEdge(Mod6(dir), a.Position.Rotation)) {
		return false
	}
	b, ok := board.Get(from.Neighbor(dir))
	if !ok {
		return false
	}
	return reciprocates(b, Mod6(dir))
}

// AStar находит кратчайший путь от start до goal по связанным рёбрам
// размещённых тайлов. nil, если пути нет.
func AStar(board BoardReader, start, goal Hex) []Hex {
	if _, ok := board.Get(start); !ok {
		return nil
	}
	if _, ok := board.Get(goal); !ok {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Hex: start, Cost: 0, Parent: nil})
	costSoFar := make(map[Hex]int)
	costSoFar[start] = 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Hex == goal {
			return reconstructPath(current)
		}
		for dir, neighbor := range current.Hex.Neighbors() {
			if !Linked(board, current.Hex, dir) {
				continue
			}
			newCost := costSoFar[current.Hex] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + neighbor.Distance(goal)
				heap.Push(pq, &Node{Hex: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Hex    Hex
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Hex {
	path := []Hex{}
	for node != nil {
		path = append([]Hex{node.Hex}, path...)
		node = node.Parent
	}
	return path
}
