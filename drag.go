package cursor

// DragArbiter holds the single global drag slot. At most one Dragger owns it
// at a time.
type DragArbiter struct {
	claimant Dragger
}

// TryClaim gives the slot to d when it is free and hovered reports true.
func (a *DragArbiter) TryClaim(d Dragger, hovered bool) bool {
	if d == nil || a.claimant != nil || !hovered {
		return false
	}
	a.claimant = d
	return true
}

// Release frees the slot if l is the current claimant. Releases by anyone
// else are ignored.
func (a *DragArbiter) Release(l Listener) {
	if a.claimant != nil && Listener(a.claimant) == l {
		a.claimant = nil
	}
}

// Claimant returns the current claimant, or nil.
func (a *DragArbiter) Claimant() Dragger {
	return a.claimant
}

// sweep clears the slot when the claimant stopped dragging or is no longer
// registered. Reports whether the claim was cleared.
func (a *DragArbiter) sweep(registered func(Listener) bool) bool {
	if a.claimant == nil {
		return false
	}
	if !registered(a.claimant) || !a.claimant.IsDragging() {
		a.claimant = nil
		return true
	}
	return false
}
