package cursor

// transition is a pending hover change for one listener.
type transition struct {
	kind     EventKind // EventEnter or EventExit
	listener Listener
}

// hoverTracker owns the set of hovered listeners and diffs it against each
// tick's hit-test result.
type hoverTracker struct {
	hovered []Listener
	hits    []Listener // deduplicated hits of the current tick
	pending []transition
}

// diff updates the hovered set from this tick's hits and returns the
// transitions to deliver, Enters first. A hovered listener that is no longer
// registered is dropped without an Exit.
func (h *hoverTracker) diff(hits []Listener, reg *listenerRegistry) []transition {
	h.pending = h.pending[:0]
	h.hits = dedupListeners(hits, h.hits)

	// Prune listeners that were unregistered while hovered.
	kept := h.hovered[:0]
	for _, l := range h.hovered {
		if reg.contains(l) {
			kept = append(kept, l)
		}
	}
	clearTail(h.hovered, len(kept))
	h.hovered = kept

	// Deliver Enter events.
	for _, l := range h.hits {
		if _, found := searchListener(h.hovered, l); found {
			continue
		}
		if !reg.contains(l) {
			continue
		}
		h.hovered = append(h.hovered, l)
		h.pending = append(h.pending, transition{kind: EventEnter, listener: l})
	}

	// Deliver Exit events.
	kept = h.hovered[:0]
	for _, l := range h.hovered {
		if _, found := searchListener(h.hits, l); found {
			kept = append(kept, l)
			continue
		}
		h.pending = append(h.pending, transition{kind: EventExit, listener: l})
	}
	clearTail(h.hovered, len(kept))
	h.hovered = kept
	return h.pending
}

// remove drops l without an Exit. A later hit enters it again.
func (h *hoverTracker) remove(l Listener) {
	i, found := searchListener(h.hovered, l)
	if !found {
		return
	}
	copy(h.hovered[i:], h.hovered[i+1:])
	h.hovered[len(h.hovered)-1] = nil
	h.hovered = h.hovered[:len(h.hovered)-1]
}

func (h *hoverTracker) contains(l Listener) bool {
	_, found := searchListener(h.hovered, l)
	return found
}

// clearTail nils out s[n:] so dropped listeners are not retained by the
// backing array.
func clearTail(s []Listener, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
