package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dacharyc/movediff/internal/gitrev"
)

func (a *app) gitChurnCmd() *cobra.Command {
	var (
		repoPath     string
		withBaseline bool
	)

	cmd := &cobra.Command{
		Use:   "gitchurn <path> <from-rev> <to-rev>",
		Short: "Print the churn of a file between two git revisions",
		Long: `Print the number of lines added and deleted in path between from-rev and
to-rev. A file absent at a revision is treated as empty.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, from, to := args[0], args[1], args[2]

			repo, err := gitrev.Open(repoPath)
			if err != nil {
				return err
			}
			oldContent, err := a.fileAt(cmd, repo, from, path)
			if err != nil {
				return err
			}
			newContent, err := a.fileAt(cmd, repo, to, path)
			if err != nil {
				return err
			}

			report, err := a.churn(oldContent, newContent, withBaseline)
			if err != nil {
				return err
			}
			return a.renderChurn(report)
		},
	}
	cmd.Flags().StringVar(&repoPath, "repo", ".", "path inside the git repository")
	cmd.Flags().BoolVar(&withBaseline, "baseline", false, "also report Myers line diff churn")
	return cmd
}

// fileAt reads path at rev, returning empty content when it does not exist.
func (a *app) fileAt(cmd *cobra.Command, repo *gitrev.Repository, rev, path string) ([]byte, error) {
	content, err := repo.FileAt(cmd.Context(), rev, path)
	if errors.Is(err, gitrev.ErrFileNotFound) {
		a.logger.Debug().Str("path", path).Str("rev", rev).Msg("file absent, treating as empty")
		return nil, nil
	}
	return content, err
}
