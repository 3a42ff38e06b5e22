package ports

import (
	"context"

	"go.trai.ch/rerun/internal/core/domain"
)

// PathExpander defines the interface for turning a pattern into matched paths.
//
//go:generate mockgen -source=expander.go -destination=mocks/mock_expander.go -package=mocks
type PathExpander interface {
	// Expand resolves pattern against the current working directory and
	// returns the absolute paths it matches.
	//
	// Every returned path has an entry in cache afterwards. Paths already in
	// cache are not stat'ed again.
	Expand(ctx context.Context, pattern string, cache *domain.StatCache) ([]string, error)
}
