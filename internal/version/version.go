// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version provides build-time version information.
package version

import "fmt"

// Info contains build-time version information injected via ldflags.
type Info struct {
	Version   string // Semantic version from git tags (e.g., "v1.2.3")
	GitCommit string // Short git commit hash (e.g., "abc1234")
	BuildTime string // Build timestamp in RFC3339 format
}

// String formats the info for -version output.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", orDefault(i.Version, "dev"), orDefault(i.GitCommit, "unknown"), orDefault(i.BuildTime, "unknown"))
}

// AssetVersion is the cache-busting suffix for static asset URLs. Development
// builds use the commit so edited assets are not served stale.
func (i Info) AssetVersion() string {
	if i.Version == "" || i.Version == "dev" {
		return orDefault(i.GitCommit, "dev")
	}
	return i.Version
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
