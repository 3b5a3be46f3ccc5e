package provider

import "errors"

var (
	// ErrNotRegistered is returned when no driver services are registered
	// under a requested name. It is a configuration error and is never
	// worth retrying.
	ErrNotRegistered = errors.New("provider: driver services not registered")

	// ErrNoConnection is returned when a command is executed before a
	// connection was bound to it.
	ErrNoConnection = errors.New("provider: command has no connection")

	// ErrNilCommand is returned when a command definition is built from a
	// nil prototype.
	ErrNilCommand = errors.New("provider: nil command")

	// ErrNilParameter is returned when a value is bound to a nil parameter.
	ErrNilParameter = errors.New("provider: nil parameter")

	// ErrUnknownManifestToken is returned for manifest tokens that are
	// malformed or belong to another dialect.
	ErrUnknownManifestToken = errors.New("provider: unknown manifest token")

	// ErrUnsupportedTree is returned for command trees a provider cannot
	// render.
	ErrUnsupportedTree = errors.New("provider: unsupported command tree")
)
