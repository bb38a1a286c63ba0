package core

import (
	"errors"
)

var (
	// ErrBackendBooting signals that the render backend is recreating its
	// targets, typically after a resize, and the frame should be skipped.
	ErrBackendBooting = errors.New("render backend resized or recreated, booting")
	// ErrResourceNotFound is returned by loaders and asset lookups.
	ErrResourceNotFound = errors.New("resource not found")
	ErrUnknown          = errors.New("unknown")
)
