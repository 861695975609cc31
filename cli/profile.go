// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/profile"
)

type (
	// Profiling is a struct that can be embedded in any kong cli to enable
	// easy and convenient profiling for performance analysis. The flag is
	// hidden from the help message such that we can use it in public cli.
	//
	// The supported values are:
	//   - "cpu":    Enables CPU profiling.
	//   - "memory": Enables heap memory profiling.
	//   - "block":  Enables block (contention) profiling.
	//   - "mutex":  Enables mutex profiling.
	//   - "trace":  Enables trace profiling.
	//
	// Profiles are written under ProfileDir and the file path is shown to
	// stderr. Open it with `go tool pprof $file`.
	Profiling struct {
		Profiling string `opt:"" hidden:"true" default:""`
	}
)

// ProfileDir is where profiles of app are written, inside the XDG cache
// directory.
func ProfileDir(app string) string {
	return filepath.Join(xdg.CacheHome, app, "profiles")
}

// Start starts the profiling operation. It returns a function that needs to be
// called when the profiling should stop.
func (p *Profiling) Start(app string) func() {
	mode := profileMode(p.Profiling)
	if mode == nil {
		return func() {}
	}
	return profile.Start(profile.ProfilePath(ProfileDir(app)), mode, profile.NoShutdownHook).Stop
}

func profileMode(name string) func(*profile.Profile) {
	switch name {
	case "cpu":
		return profile.CPUProfile
	case "memory":
		return profile.MemProfile
	case "block":
		return profile.BlockProfile
	case "mutex":
		return profile.MutexProfile
	case "trace":
		return profile.TraceProfile
	default:
		return nil
	}
}
