package cursor

// listenerRegistry is the ordered set of subscribed listeners. Broadcast
// order is registration order.
type listenerRegistry struct {
	order []Listener
	set   map[Listener]struct{}
}

func (r *listenerRegistry) add(l Listener) bool {
	if r.set == nil {
		r.set = make(map[Listener]struct{})
	}
	if _, ok := r.set[l]; ok {
		return false
	}
	r.set[l] = struct{}{}
	r.order = append(r.order, l)
	return true
}

func (r *listenerRegistry) remove(l Listener) bool {
	if _, ok := r.set[l]; !ok {
		return false
	}
	delete(r.set, l)
	if i, found := searchListener(r.order, l); found {
		copy(r.order[i:], r.order[i+1:])
		r.order[len(r.order)-1] = nil
		r.order = r.order[:len(r.order)-1]
	}
	return true
}

func (r *listenerRegistry) contains(l Listener) bool {
	_, ok := r.set[l]
	return ok
}

func (r *listenerRegistry) len() int {
	return len(r.order)
}

// snapshot copies the current order into buf so callbacks may mutate the
// registry while a broadcast is in progress.
func (r *listenerRegistry) snapshot(buf []Listener) []Listener {
	return append(buf[:0], r.order...)
}
