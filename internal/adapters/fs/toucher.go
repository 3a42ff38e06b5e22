package fs

import (
	"os"
	"time"

	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Toucher implements ports.Toucher with os.Chtimes.
type Toucher struct{}

// NewToucher creates a new Toucher.
func NewToucher() *Toucher {
	return &Toucher{}
}

// Touch sets both the access and modification time of path to at.
func (t *Toucher) Touch(path string, at time.Time) error {
	if err := os.Chtimes(path, at, at); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTouchFailed.Error()), "path", path)
	}
	return nil
}
