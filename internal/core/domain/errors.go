package domain

import "go.trai.ch/zerr"

var (
	// ErrResolution is returned when the classpath manifest, the dependency
	// directory or the compiled-output directory is missing or unreadable.
	ErrResolution = zerr.New("classpath resolution failed")

	// ErrScanWarning marks a single class that could not be parsed during a scan.
	// It is logged and never returned to callers.
	ErrScanWarning = zerr.New("class skipped during scan")

	// ErrMalformedClass is returned by the class-file parser for structurally invalid input.
	ErrMalformedClass = zerr.New("malformed class file")

	// ErrMaterialization is returned when a scanned candidate cannot be resolved
	// through the loading context.
	ErrMaterialization = zerr.New("materialization failed")

	// ErrContextClosed is returned when a loading context is used after Close.
	ErrContextClosed = zerr.New("loading context closed")

	// ErrSelection is returned when a type filter matches zero or several injectables.
	ErrSelection = zerr.New("type selection failed")

	// ErrNoInjectables is returned when a producer that needs at least one
	// injectable is dispatched with an empty set.
	ErrNoInjectables = zerr.New("no injectable types found")

	// ErrUnknownProducer is returned for a producer kind that is not registered.
	ErrUnknownProducer = zerr.New("unknown producer kind")

	// ErrInvalidConfig is returned when the configuration file cannot be parsed or is inconsistent.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidRequest is returned when a generation request lacks a required parameter.
	ErrInvalidRequest = zerr.New("invalid generation request")
)
