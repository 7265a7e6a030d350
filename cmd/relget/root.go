package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jiahut/relget/internal/cli"
	"github.com/jiahut/relget/internal/collections"
	"github.com/jiahut/relget/pkg/github"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relget <repository-url> [filter keywords...]",
		Short: "Download an asset of a GitHub repository's latest release",
		Long: "Fetches the latest release of the given GitHub repository, narrows its" +
			" assets down via the filter keywords (or a file type heuristic when no" +
			" keywords are given) and downloads the result. If more than one asset" +
			" remains, you get to pick.",
		Example: examples(
			"relget https://github.com/denoland/deno",
			"relget github.com/cli/cli linux amd64",
			"relget . --first",
		),
		Args: cobra.ArbitraryArgs,
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			outputDir := must(cmd.Flags().GetString("output"))
			pickFirst := must(cmd.Flags().GetBool("first"))

			repo, err := resolveRepo(args[0])
			if err != nil {
				return err
			}

			release, err := github.NewClient().LatestRelease(cmd.Context(), repo)
			if err != nil {
				return fmt.Errorf("error fetching latest release: %w", err)
			}

			fmt.Printf("Latest release of %s: %s\n", repo, releaseHeadline(release))

			if len(release.Assets) == 0 {
				fmt.Println("The release has no downloadable assets.")
				return nil
			}

			matched := github.Match(release.Assets, github.MatchOptions{Filters: args[1:]})
			if len(matched) == 0 {
				fmt.Println("No asset matches the given filters. Available assets:")
				cli.PrintAssets(release.Assets)
				return nil
			}

			selected, done, err := pickAsset(matched, chooseSelector(pickFirst))
			if err != nil {
				return err
			}
			if !done {
				return nil
			}

			fmt.Printf("Downloading '%s' (%s) ...\n", selected.Name, github.FormatSize(selected.Size))
			path, err := github.Download(cmd.Context(), outputDir, selected)
			if err != nil {
				return fmt.Errorf("error downloading asset: %w", err)
			}

			fmt.Printf("Downloaded to '%s'\n", path)
			return nil
		}),
	}

	cmd.Flags().StringP("output", "o", ".", "Directory the asset is downloaded into")
	cmd.Flags().Bool("first", false, "Skip the interactive prompt and take the first match")

	return cmd
}

// chooseSelector picks the interactive prompt where a human can answer
// it; --first and piped output fall back to taking the first match.
func chooseSelector(pickFirst bool) cli.Selector {
	if pickFirst || !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.FirstSelector{}
	}
	return cli.PromptSelector{Size: 10}
}

// pickAsset resolves the matched assets to a single one. A single match
// never prompts; multiple matches go through the selector. The second
// return value is false when the user chose nothing, which isn't an
// error.
func pickAsset(matched []github.Asset, selector cli.Selector) (github.Asset, bool, error) {
	if len(matched) == 1 {
		return matched[0], true, nil
	}

	labels := collections.MapSlice(matched, github.Asset.Label)
	choice, ok, err := selector.Select(fmt.Sprintf("%d assets match, pick one", len(matched)), labels)
	if err != nil {
		// A broken terminal shouldn't look like a failed download.
		fmt.Println(color.YellowString(
			"Selection unavailable (%s); rerun with --first to take the first match.", err))
		return github.Asset{}, false, nil
	}
	if !ok {
		fmt.Println("No file chosen.")
		return github.Asset{}, false, nil
	}

	for _, asset := range matched {
		if asset.Label() == choice {
			return asset, true, nil
		}
	}

	// Labels are derived from the options, so this can only trip on a
	// selector implementation bug.
	return github.Asset{}, false, fmt.Errorf("selection %q doesn't map to any asset", choice)
}

func releaseHeadline(release *github.Release) string {
	if release.Title == "" || release.Title == release.Tag {
		return release.Tag
	}
	return fmt.Sprintf("%s (%s)", release.Tag, release.Title)
}
