package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dacharyc/movediff"
)

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Print the edit script that builds new-file from old-file",
		Long: `Print one edit per line. MOVE(a1-a2,b1-b2) means new lines b1..b2 are old
lines a1..a2 unchanged; INSERT(-1--1,b1-b2) means new lines b1..b2 were added.
Line numbers are 0-based and ranges inclusive.`,
		Args: twoFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldContent, newContent, err := readPair(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			edits, err := a.diff(oldContent, newContent)
			if err != nil {
				return err
			}
			return a.renderEdits(edits)
		},
	}
}

// diff runs the engine with the configured options and logs the outcome.
func (a *app) diff(oldContent, newContent []byte) ([]movediff.Edit, error) {
	start := time.Now()
	edits, err := movediff.DiffBytes(oldContent, newContent, a.diffOptions()...)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}

	if a.logger.GetLevel() <= zerolog.DebugLevel {
		oldText, newText := movediff.NewText(oldContent), movediff.NewText(newContent)
		if err := movediff.Validate(edits, oldText, newText); err != nil {
			return nil, err
		}
		a.logger.Debug().
			Int("old_lines", oldText.Len()).
			Int("new_lines", newText.Len()).
			Int("edits", len(edits)).
			Bool("ignore_whitespace", a.cfg.IgnoreWhitespace).
			Dur("elapsed", time.Since(start)).
			Msg("diff computed")
	}
	return edits, nil
}
