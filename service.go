package cursor

import "sync"

var (
	defaultMu     sync.RWMutex
	defaultRouter *Router
)

// Init installs r as the process-wide router returned by Default. Most code
// should take a *Router explicitly; Default exists for code that cannot.
func Init(r *Router) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRouter != nil {
		return ErrAlreadyInitialized
	}
	defaultRouter = r
	return nil
}

// Teardown uninstalls the process-wide router.
func Teardown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRouter = nil
}

// Default returns the process-wide router or ErrNotAvailable.
func Default() (*Router, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultRouter == nil {
		return nil, ErrNotAvailable
	}
	return defaultRouter, nil
}

// Available reports whether a process-wide router is installed.
func Available() bool {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRouter != nil
}
