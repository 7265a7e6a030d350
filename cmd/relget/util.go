package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jiahut/relget/internal/git"
	"github.com/jiahut/relget/pkg/github"
	"github.com/spf13/cobra"
)

// RunE wraps the actual command logic, making sure runtime errors don't
// trigger a usage dump and reach stderr through a single red-prefixed
// path before the process exits nonzero.
func RunE(handler func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if err := handler(cmd, args); err != nil {
			cmd.SilenceErrors = true
			fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
			return err
		}
		return nil
	}
}

// must unwraps flag lookups that can only fail on programming errors,
// such as typos in flag names.
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func examples(examples ...string) string {
	var builder strings.Builder
	for index, example := range examples {
		builder.WriteString("  ")
		builder.WriteString(example)
		if index != len(examples)-1 {
			builder.WriteRune('\n')
		}
	}

	return builder.String()
}

// resolveRepo turns the positional repository argument into owner/name.
// Arguments pointing at a local directory are resolved through the
// clone's origin remote, everything else must contain a
// github.com/<owner>/<repo> fragment.
func resolveRepo(arg string) (github.Repo, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		originURL, err := git.OriginURL(arg)
		if err != nil {
			return github.Repo{}, fmt.Errorf("error resolving origin remote of '%s': %w", arg, err)
		}
		return github.ParseRepoURL(originURL)
	}

	return github.ParseRepoURL(arg)
}
