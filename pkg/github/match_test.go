package github_test

import (
	"strings"
	"testing"

	"github.com/jiahut/relget/pkg/github"
	"github.com/stretchr/testify/require"
)

func asset(name string) github.Asset {
	return github.Asset{
		Name:        name,
		Size:        1024,
		DownloadURL: "https://example.invalid/" + name,
	}
}

func names(assets []github.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, asset := range assets {
		out = append(out, asset.Name)
	}
	return out
}

func Test_Match_DefaultHeuristic(t *testing.T) {
	assets := []github.Asset{
		asset("deno-x86_64-apple-darwin.zip"),
		asset("SHA256SUMS.txt"),
		asset("Deno-Setup.EXE"),
		asset("deno_src.tar.gz"),
		asset("README.md"),
		asset("editor.AppImage"),
		asset("tool-1.2.3.deb"),
	}

	matched := github.Match(assets, github.MatchOptions{})

	// Order-preserving subset; only recognized suffixes survive,
	// regardless of casing.
	require.Equal(t, []string{
		"deno-x86_64-apple-darwin.zip",
		"Deno-Setup.EXE",
		"deno_src.tar.gz",
		"editor.AppImage",
		"tool-1.2.3.deb",
	}, names(matched))

	for _, match := range matched {
		lower := strings.ToLower(match.Name)
		var recognized bool
		for _, suffix := range github.DefaultSuffixes {
			if strings.HasSuffix(lower, suffix) {
				recognized = true
				break
			}
		}
		require.True(t, recognized, "unexpected suffix on %q", match.Name)
	}
}

func Test_Match_DefaultHeuristic_IgnoresArchTokens(t *testing.T) {
	// The heuristic passes assets with and without architecture tokens
	// alike; narrowing happens through explicit filters.
	assets := []github.Asset{
		asset("tool-arm64.zip"),
		asset("tool.zip"),
	}

	matched := github.Match(assets, github.MatchOptions{})
	require.Len(t, matched, 2)
}

func Test_Match_Keywords(t *testing.T) {
	assets := []github.Asset{
		asset("deno-x86_64-apple-darwin.zip"),
		asset("deno-x86_64-pc-windows-msvc.zip"),
		asset("deno-aarch64-apple-darwin.zip"),
	}

	t.Run("single keyword", func(t *testing.T) {
		matched := github.Match(assets, github.MatchOptions{Filters: []string{"windows"}})
		require.Equal(t, []string{"deno-x86_64-pc-windows-msvc.zip"}, names(matched))
	})
	t.Run("all keywords must match", func(t *testing.T) {
		matched := github.Match(assets, github.MatchOptions{Filters: []string{"darwin", "x86_64"}})
		require.Equal(t, []string{"deno-x86_64-apple-darwin.zip"}, names(matched))
	})
	t.Run("keywords are case-insensitive", func(t *testing.T) {
		matched := github.Match(assets, github.MatchOptions{Filters: []string{"DARWIN", "Aarch64"}})
		require.Equal(t, []string{"deno-aarch64-apple-darwin.zip"}, names(matched))
	})
	t.Run("no match yields empty result", func(t *testing.T) {
		assets := []github.Asset{
			asset("source-code.zip"),
			asset("documentation.pdf"),
		}
		matched := github.Match(assets, github.MatchOptions{Filters: []string{"windows"}})
		require.Empty(t, matched)
	})
	t.Run("keyword filters ignore suffix heuristic", func(t *testing.T) {
		matched := github.Match(
			[]github.Asset{asset("checksums-windows.txt")},
			github.MatchOptions{Filters: []string{"windows"}},
		)
		require.Len(t, matched, 1)
	})
}

func Test_Match_DoesNotMutateInput(t *testing.T) {
	assets := []github.Asset{
		asset("b.zip"),
		asset("a.txt"),
		asset("c.zip"),
	}

	github.Match(assets, github.MatchOptions{})
	require.Equal(t, []string{"b.zip", "a.txt", "c.zip"}, names(assets))
}

func Test_Match_EmptyInput(t *testing.T) {
	require.Empty(t, github.Match(nil, github.MatchOptions{}))
	require.Empty(t, github.Match(nil, github.MatchOptions{Filters: []string{"zip"}}))
}
