// Package storage persists the non-secret settings a site's password was
// generated with, so they can be reproduced without being remembered.
// Secrets, derived keys and passwords are never stored.
package storage

import "errors"

var (
	// ErrNotFound is returned when no profile is stored for a site.
	ErrNotFound = errors.New("site profile not found")
	// ErrInvalidSite is returned for an empty site identifier.
	ErrInvalidSite = errors.New("invalid site")
)

// Repository defines the interface for site profile storage.
type Repository interface {
	Put(profile *SiteProfile) error
	Get(site string) (*SiteProfile, error)
	List() ([]string, error)
	Delete(site string) error
	Close() error
}
