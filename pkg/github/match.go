package github

import (
	"strings"

	"github.com/jiahut/relget/internal/collections"
)

// DefaultSuffixes are the archive and installer extensions the default
// heuristic recognizes. Comparison happens on the lowercased asset name.
var DefaultSuffixes = []string{
	".zip", ".tar.gz", ".tgz", ".tar.xz", ".tar.bz2",
	".exe", ".msi", ".dmg", ".deb", ".rpm", ".appimage",
}

// ArchTokens are filename fragments commonly used to mark the target CPU
// architecture. The default heuristic deliberately accepts assets without
// any such token just the same (see Match); the table is exported so
// callers can pass tokens as explicit filters instead.
var ArchTokens = []string{
	"x64", "amd64", "arm64", "aarch64", "x86_64", "universal",
}

// MatchOptions configures Match. The zero value selects the default
// heuristic.
type MatchOptions struct {
	// Filters are case-insensitive substrings an asset name must all
	// contain. An empty set enables the default suffix heuristic.
	Filters []string
}

// Match returns the subset of assets the options select, preserving input
// order. It never touches its input and does no I/O.
//
// The tool historically additionally required "no architecture token, or
// at least one architecture token" in the default heuristic, which holds
// for every name. We keep the effective behavior (any recognized suffix
// passes) rather than guess at intent; architecture narrowing is done via
// explicit filters.
func Match(assets []Asset, options MatchOptions) []Asset {
	if len(options.Filters) == 0 {
		return matchSubset(assets, hasDefaultSuffix)
	}

	filters := collections.MapSlice(options.Filters, strings.ToLower)
	return matchSubset(assets, func(name string) bool {
		return containsAll(name, filters)
	})
}

func matchSubset(assets []Asset, matches func(lowerName string) bool) []Asset {
	var matched []Asset
	for _, asset := range assets {
		if matches(strings.ToLower(asset.Name)) {
			matched = append(matched, asset)
		}
	}
	return matched
}

func hasDefaultSuffix(lowerName string) bool {
	for _, suffix := range DefaultSuffixes {
		if strings.HasSuffix(lowerName, suffix) {
			return true
		}
	}
	return false
}

func containsAll(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}
