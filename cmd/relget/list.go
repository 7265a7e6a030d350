package main

import (
	"fmt"

	"github.com/jiahut/relget/internal/cli"
	"github.com/jiahut/relget/pkg/github"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <repository-url>",
		Short: "List the assets of the latest release without downloading",
		Example: examples(
			"relget list github.com/denoland/deno",
			"relget list .",
		),
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
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

			cli.PrintAssets(release.Assets)
			return nil
		}),
	}
}
