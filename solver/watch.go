package solver

import "sort"

// A Watch is one entry of a literal's watch list: spec.md §3 "A record
// {clause, blit (blocking literal), size}". Kept as a value type, same as
// the teacher's watcher struct, so watch-list compaction (see
// propagateOn and the asymmetric propagator) can shuffle entries by
// plain slice assignment instead of pointer chasing.
type Watch struct {
	Clause *Clause
	Blit   Lit
	Size   int
}

func (w Watch) binary() bool { return w.Size == 2 }

// watchList is the per-literal index that enables lazy two-watched-literal
// BCP (spec.md glossary). One instance is built fresh on entry to CCE and
// to transitive reduction and torn down before return (spec.md §3
// Lifecycles, §5 "scoped acquisitions").
type watchList struct {
	maxVar int
	ws     [][]Watch // ws[litIndex(l, maxVar)] holds every clause currently watching l
}

func newWatchList(maxVar int) *watchList {
	return &watchList{maxVar: maxVar, ws: make([][]Watch, 2*maxVar+1)}
}

func (wl *watchList) idx(l Lit) int { return litIndex(l, wl.maxVar) }

// at returns the watch list of l.
func (wl *watchList) at(l Lit) []Watch { return wl.ws[wl.idx(l)] }

// set overwrites the watch list of l, used by the in-place compaction loops
// in the propagators once they've shrunk a list.
func (wl *watchList) set(l Lit, ws []Watch) { wl.ws[wl.idx(l)] = ws }

// add appends a watch of clause c to l's watch list.
func (wl *watchList) add(l Lit, c *Clause, blit Lit) {
	i := wl.idx(l)
	wl.ws[i] = append(wl.ws[i], Watch{Clause: c, Blit: blit, Size: c.Len()})
}

// watch installs the two-watched-literal invariant for c: c is a clause of
// size >= 2, so it is watched at its first two literals (spec.md §3 "I1").
// A clause is filed under the literal it watches directly (not its
// negation): spec.md §4.1 scans watches(lit) when val(lit) < 0, so the
// clause watching lit must live at index lit, triggered when lit itself
// goes false.
func (wl *watchList) watch(c *Clause) {
	if c.Len() < 2 {
		panic("solver: cannot watch a unit or empty clause")
	}
	a, b := c.First(), c.Second()
	wl.add(a, c, b)
	wl.add(b, c, a)
}

// unwatch removes c from the watch lists of its first two literals. Used
// when a clause's watched literals are about to be replaced, or when the
// clause is being torn down.
func (wl *watchList) unwatch(c *Clause) {
	a, b := c.First(), c.Second()
	wl.removeFrom(a, c)
	wl.removeFrom(b, c)
}

func (wl *watchList) removeFrom(l Lit, c *Clause) {
	i := wl.idx(l)
	lst := wl.ws[i]
	j := 0
	for j < len(lst) && lst[j].Clause != c {
		j++
	}
	if j == len(lst) {
		return
	}
	last := len(lst) - 1
	lst[j] = lst[last]
	wl.ws[i] = lst[:last]
}

// SortBinariesFirst moves every binary-clause watch to the front of every
// watch list, so a BFS over the binary implication graph (transitive
// reduction, spec.md §4.6) can stop scanning a list at the first long
// clause. Grounded on original_source transred.cpp's sort_watches, called
// once per TransRed pass.
func (wl *watchList) SortBinariesFirst() {
	for i, lst := range wl.ws {
		if len(lst) < 2 {
			continue
		}
		sort.SliceStable(lst, func(a, b int) bool {
			return lst[a].binary() && !lst[b].binary()
		})
		wl.ws[i] = lst
	}
}

// sortClausesBySize stable-sorts a slice of clauses by ascending literal
// count, the ordering spec.md §4.4 wants for occurrence lists ("shorter
// candidate resolvents first"). Its caller is occLists.sortBySize.
func sortClausesBySize(cs []*Clause) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Len() < cs[j].Len() })
}
