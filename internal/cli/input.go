package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// readPair reads the old and new files concurrently.
func readPair(ctx context.Context, oldPath, newPath string) (oldContent, newContent []byte, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		oldContent, err = os.ReadFile(oldPath)
		if err != nil {
			return fmt.Errorf("read old file: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		newContent, err = os.ReadFile(newPath)
		if err != nil {
			return fmt.Errorf("read new file: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return oldContent, newContent, nil
}
