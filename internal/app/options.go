package app

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Dir is the working directory to change into before expansion.
	// Empty keeps the current one.
	Dir string
	// Sources are the patterns whose recency triggers the command.
	Sources []string
	// Targets are the patterns whose recency suppresses the command.
	Targets []string
	// Command is the command line to run, one token per element.
	Command []string
	// Verbose logs the duration of every pipeline phase.
	Verbose bool
}

// Validate checks that every required option is present.
func (o RunOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Sources, validation.Required, validation.Each(validation.Required)),
		validation.Field(&o.Targets, validation.Required, validation.Each(validation.Required)),
		validation.Field(&o.Command, validation.Required),
	)
	if err != nil {
		return zerr.Wrap(err, domain.ErrInvalidOptions.Error())
	}
	return nil
}
