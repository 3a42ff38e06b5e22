package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCommand is returned when no command follows the option list.
	ErrNoCommand = zerr.New("no command specified")

	// ErrInvalidOptions is returned when the resolved run options fail validation.
	ErrInvalidOptions = zerr.New("invalid options")

	// ErrChdirFailed is returned when the working directory cannot be changed.
	ErrChdirFailed = zerr.New("failed to change working directory")

	// ErrInvalidPattern is returned when a source or target pattern cannot be compiled.
	ErrInvalidPattern = zerr.New("invalid pattern")

	// ErrExpansionFailed is returned when the filesystem cannot be enumerated for a pattern.
	ErrExpansionFailed = zerr.New("failed to expand pattern")

	// ErrPathStatFailed is returned when stating a matched path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrCommandLaunchFailed is returned when the command cannot be started at all.
	// A command that starts and exits non-zero is not an error.
	ErrCommandLaunchFailed = zerr.New("failed to launch command")

	// ErrTouchFailed is returned when updating the times of a source directory fails.
	ErrTouchFailed = zerr.New("failed to touch directory")
)
