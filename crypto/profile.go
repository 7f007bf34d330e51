package crypto

import (
	"fmt"
	"strings"
)

// Mode names a cost tier.
type Mode string

// Named cost tiers. ModeNone is the default tier when no mode is requested.
const (
	ModeNone     Mode = ""
	ModeFast     Mode = "fast"
	ModeBalanced Mode = "balanced"
	ModeParanoid Mode = "paranoid"
	// ModeClassic is the default of the single-prompt variant.
	ModeClassic Mode = "classic"
)

// Tier holds the time and memory costs of a named mode.
type Tier struct {
	TimeCost  int
	MemoryKiB int
}

var tiers = map[Mode]Tier{
	ModeNone:     {TimeCost: 42, MemoryKiB: 256 * 1024},
	ModeFast:     {TimeCost: 10, MemoryKiB: 64 * 1024},
	ModeBalanced: {TimeCost: 25, MemoryKiB: 128 * 1024},
	ModeParanoid: {TimeCost: 50, MemoryKiB: 512 * 1024},
	ModeClassic:  {TimeCost: 3, MemoryKiB: 32 * 1024},
}

// SelectableModes lists the modes accepted from the command line, in
// ascending cost order.
var SelectableModes = []Mode{ModeFast, ModeBalanced, ModeParanoid}

// ParseMode converts user input into a Mode. The empty string and "none"
// select ModeNone.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "none" {
		return ModeNone, nil
	}
	if _, ok := tiers[m]; !ok {
		return "", fmt.Errorf("%w: unknown mode %q (want fast, balanced or paranoid)", ErrInvalidParameter, s)
	}
	return m, nil
}

// TierFor returns the costs of mode.
func TierFor(mode Mode) (Tier, error) {
	t, ok := tiers[mode]
	if !ok {
		return Tier{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, string(mode))
	}
	return t, nil
}

// Resolve returns the time and memory costs for mode. Non-zero explicit
// values override the tier regardless of mode; zero means not supplied.
func Resolve(mode Mode, explicitTime, explicitMem int) (timeCost, memoryKiB int, err error) {
	t, err := TierFor(mode)
	if err != nil {
		return 0, 0, err
	}
	timeCost, memoryKiB = t.TimeCost, t.MemoryKiB
	if explicitTime != 0 {
		timeCost = explicitTime
	}
	if explicitMem != 0 {
		memoryKiB = explicitMem
	}
	return timeCost, memoryKiB, nil
}

// ProfileInfo describes how expensive a set of costs is.
type ProfileInfo struct {
	Name     string
	Estimate string
}

// Classify names the security profile that timeCost and memoryKiB fall in.
// Thresholds are checked in order, so a low time cost with a large memory
// cost can still classify as Custom.
func Classify(timeCost, memoryKiB int) ProfileInfo {
	switch {
	case timeCost <= 10 && memoryKiB <= 64*1024:
		return ProfileInfo{Name: "Fast", Estimate: "30s-1min"}
	case timeCost <= 25 && memoryKiB <= 128*1024:
		return ProfileInfo{Name: "Balanced", Estimate: "1-2min"}
	case timeCost >= 42:
		return ProfileInfo{Name: "Paranoid", Estimate: "2-5min"}
	default:
		return ProfileInfo{Name: "Custom", Estimate: "several minutes"}
	}
}
