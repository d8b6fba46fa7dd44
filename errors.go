package cursor

import "errors"

var (
	// ErrNoCamera is returned by Projector.Update when no camera is set.
	// World projection is skipped for that tick.
	ErrNoCamera = errors.New("cursor: no camera set")

	// ErrNoSource is returned by NewRouter when no input source is given.
	ErrNoSource = errors.New("cursor: no input source")

	// ErrNilVisual is returned when an override without a visual is added.
	ErrNilVisual = errors.New("cursor: override has nil visual")

	// ErrNoDefaultVisual is returned when the override stack is empty and no
	// default visual has been configured.
	ErrNoDefaultVisual = errors.New("cursor: no default visual")

	// ErrNotAvailable is returned by Default before Init or after Teardown.
	ErrNotAvailable = errors.New("cursor: router not available")

	// ErrAlreadyInitialized is returned by Init when a router is already
	// installed.
	ErrAlreadyInitialized = errors.New("cursor: router already initialized")
)
