package cli

import (
	"github.com/spf13/cobra"

	"github.com/dacharyc/movediff"
	"github.com/dacharyc/movediff/internal/baseline"
)

// churnReport is the result of the churn commands.
type churnReport struct {
	Added    int             `json:"added" yaml:"added"`
	Deleted  int             `json:"deleted" yaml:"deleted"`
	Baseline *baseline.Churn `json:"baseline,omitempty" yaml:"baseline,omitempty"`
}

func (a *app) churnCmd() *cobra.Command {
	var withBaseline bool

	cmd := &cobra.Command{
		Use:   "churn <old-file> <new-file>",
		Short: "Print the number of added and deleted lines",
		Long: `Print the number of lines added to new-file and deleted from old-file.
Moved blocks count as neither. With --baseline, also print the counts of a
conventional Myers line diff, which counts moved blocks as deleted and added.`,
		Args: twoFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldContent, newContent, err := readPair(cmd.Context(), args[0], args[1])
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
	cmd.Flags().BoolVar(&withBaseline, "baseline", false, "also report Myers line diff churn")
	return cmd
}

// churn diffs the contents and tallies the edit script.
func (a *app) churn(oldContent, newContent []byte, withBaseline bool) (churnReport, error) {
	edits, err := a.diff(oldContent, newContent)
	if err != nil {
		return churnReport{}, err
	}
	c, err := movediff.Tally(edits, movediff.CountLines(oldContent))
	if err != nil {
		return churnReport{}, err
	}

	report := churnReport{Added: c.Added, Deleted: c.Deleted}
	if withBaseline {
		b := baseline.LineChurn(string(oldContent), string(newContent))
		report.Baseline = &b
	}
	a.logger.Info().Int("added", report.Added).Int("deleted", report.Deleted).Msg("churn computed")
	return report, nil
}
