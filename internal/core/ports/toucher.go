package ports

import "time"

// Toucher defines the interface for updating a path's access and modification times.
//
//go:generate mockgen -source=toucher.go -destination=mocks/mock_toucher.go -package=mocks
type Toucher interface {
	Touch(path string, at time.Time) error
}
