// Package memory provides a thread-safe in-memory implementation of storage.Repository.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jmcleod/argonpass/storage"
)

// Repository is a thread-safe in-memory implementation of storage.Repository.
// Suitable for testing and for runs with no data directory.
type Repository struct {
	mu   sync.RWMutex
	data map[string]*storage.SiteProfile
}

var _ storage.Repository = (*Repository)(nil)

// NewRepository creates a new empty in-memory Repository.
func NewRepository() *Repository {
	return &Repository{data: make(map[string]*storage.SiteProfile)}
}

func (r *Repository) Put(profile *storage.SiteProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.Site] = profile.Clone()
	return nil
}

func (r *Repository) Get(site string) (*storage.SiteProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[site]
	if !ok {
		return nil, fmt.Errorf("%s: %w", site, storage.ErrNotFound)
	}
	return p.Clone(), nil
}

func (r *Repository) List() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sites := make([]string, 0, len(r.data))
	for site := range r.data {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites, nil
}

func (r *Repository) Delete(site string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[site]; !ok {
		return fmt.Errorf("%s: %w", site, storage.ErrNotFound)
	}
	delete(r.data, site)
	return nil
}

// Close is a no-op.
func (r *Repository) Close() error {
	return nil
}
