// Package pathfind: min-priority frontier shared by Dijkstra and A*.
//
// The frontier is a binary min-heap without a decrease-key primitive.
// Improving a node's tentative distance pushes a duplicate entry; the
// stale one is discarded at pop time once the node is already finalized
// ("lazy deletion"). Correctness depends on this policy: removing entries
// eagerly would require tracking heap positions, while finalizing a node
// on its first (cheapest) pop makes every later pop of it safe to skip.

package pathfind

import "container/heap"

// frontierItem is one (node, priority) entry awaiting expansion.
type frontierItem struct {
	id  string  // node ID
	key float64 // ordering key: g for Dijkstra, g+h for A*
	g   float64 // accumulated edge-weight distance from start
	seq uint64  // insertion sequence, breaks key ties FIFO
}

// frontier is a min-heap of frontierItem ordered by key ascending.
// Equal keys are ordered by insertion sequence (FIFO), which makes the
// expansion order fully deterministic for a fixed edge-insertion order.
type frontier struct {
	items   []*frontierItem
	nextSeq uint64
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].key != f.items[j].key {
		return f.items[i].key < f.items[j].key
	}

	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push implements heap.Interface; use push instead.
func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(*frontierItem)) }

// Pop implements heap.Interface; use pop instead.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]

	return item
}

// push enqueues a node with the given ordering key and accumulated
// distance, stamping the FIFO tie-break sequence.
func (f *frontier) push(id string, key, g float64) {
	f.nextSeq++
	heap.Push(f, &frontierItem{id: id, key: key, g: g, seq: f.nextSeq})
}

// pop removes and returns the entry with the smallest key.
func (f *frontier) pop() *frontierItem {
	return heap.Pop(f).(*frontierItem)
}
