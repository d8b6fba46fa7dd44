package cursor

import (
	"fmt"
	"io"
	"log"
	"os"
)

// globalDebug enables tree-operation checks on nodes. Set by
// Router.SetDebugMode.
var globalDebug bool

// newLogger returns the router's default logger writing to stderr.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "[cursor] ", 0)
}

// tickStats holds per-tick routing metrics. Only logged in debug mode.
type tickStats struct {
	hits     int
	distinct int
	hovered  int
	enters   int
	exits    int
	events   int
}

// debugLog prints per-tick routing stats.
func (r *Router) debugLog(stats tickStats) {
	if !r.debug {
		return
	}
	r.logger.Printf("tick %d | hits: %d (%d distinct) | hovered: %d | enter: %d | exit: %d | events: %d | claimant: %v",
		r.tick, stats.hits, stats.distinct, stats.hovered, stats.enters, stats.exits, stats.events, r.drag.Claimant())
}

// logError reports err. Errors that can recur every tick are reported once
// per distinct cause until forgetError is called.
func (r *Router) logError(op string, err error, once bool) {
	if once {
		if _, seen := r.loggedErrs[err]; seen {
			return
		}
		r.loggedErrs[err] = struct{}{}
	}
	r.logger.Printf("error: %s: %v", op, err)
}

func (r *Router) forgetError(err error) {
	delete(r.loggedErrs, err)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("cursor debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[cursor] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
