package gridpath

import (
	"container/heap"
	"sort"
)

// FrontierEntry is one pending expansion in the priority queue. Seq is a
// strictly increasing counter assigned at push time; among equal priorities
// the entry with the lower Seq is extracted first.
type FrontierEntry struct {
	Priority int
	Seq      int
	Cell     Cell
}

// frontier is a min-priority queue over (priority, seq, cell) value triples.
//
// Cost improvements push a fresh entry instead of adjusting the old one in
// place; the superseded entry stays in the heap and is discarded at pop time
// once its cell has been finalized. This keeps decrease-key at O(log n)
// without mutable heap nodes, at the price of harmless extra pops.
type frontier struct {
	entries frontierHeap
	nextSeq int
}

type frontierHeap []FrontierEntry

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].Seq < h[j].Seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) {
	*h = append(*h, x.(FrontierEntry))
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

func newFrontier() *frontier {
	f := &frontier{entries: make(frontierHeap, 0, 64)}
	heap.Init(&f.entries)
	return f
}

func (f *frontier) push(priority int, c Cell) {
	heap.Push(&f.entries, FrontierEntry{Priority: priority, Seq: f.nextSeq, Cell: c})
	f.nextSeq++
}

func (f *frontier) popMin() (FrontierEntry, error) {
	if len(f.entries) == 0 {
		return FrontierEntry{}, ErrEmptyFrontier
	}
	return heap.Pop(&f.entries).(FrontierEntry), nil
}

func (f *frontier) empty() bool { return len(f.entries) == 0 }

func (f *frontier) len() int { return len(f.entries) }

// snapshot returns the current queue contents, stale entries included,
// ordered by extraction priority. A positive limit caps the result to the
// limit smallest entries, matching what a display can usefully show.
func (f *frontier) snapshot(limit int) []FrontierEntry {
	out := make([]FrontierEntry, len(f.entries))
	copy(out, f.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Seq < out[j].Seq
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
