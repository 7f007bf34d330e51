package storage

import (
	"fmt"
	"time"
)

// SiteProfile records the settings needed to regenerate a site's password.
// Zero values mean "not set" so that profiles can be layered.
type SiteProfile struct {
	Site        string    `json:"site"`
	Variant     string    `json:"variant,omitempty"`
	Length      int       `json:"length,omitempty"`
	Symbols     *bool     `json:"symbols,omitempty"`
	Mode        string    `json:"mode,omitempty"`
	TimeCost    int       `json:"time_cost,omitempty"`
	MemoryKiB   int       `json:"memory_kib,omitempty"`
	Parallelism int       `json:"parallelism,omitempty"`
	NFKD        *bool     `json:"nfkd,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks that the profile can be stored.
func (p *SiteProfile) Validate() error {
	if p == nil || p.Site == "" {
		return fmt.Errorf("%w: site must not be empty", ErrInvalidSite)
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *SiteProfile) Clone() *SiteProfile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Symbols != nil {
		v := *p.Symbols
		cp.Symbols = &v
	}
	if p.NFKD != nil {
		v := *p.NFKD
		cp.NFKD = &v
	}
	return &cp
}
