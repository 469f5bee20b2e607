package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dacharyc/movediff"
	"github.com/dacharyc/movediff/internal/config"
)

func (a *app) renderEdits(edits []movediff.Edit) error {
	if edits == nil {
		edits = []movediff.Edit{}
	}
	switch a.cfg.Output {
	case config.OutputJSON:
		return a.writeJSON(edits)
	case config.OutputYAML:
		return a.writeYAML(edits)
	default:
		for _, e := range edits {
			if _, err := fmt.Fprintln(a.stdout, e); err != nil {
				return err
			}
		}
		return nil
	}
}

func (a *app) renderChurn(r churnReport) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		return a.writeJSON(r)
	case config.OutputYAML:
		return a.writeYAML(r)
	default:
		fmt.Fprintf(a.stdout, "Added: %d\n", r.Added)
		fmt.Fprintf(a.stdout, "Deleted: %d\n", r.Deleted)
		if r.Baseline != nil {
			fmt.Fprintf(a.stdout, "Baseline added: %d\n", r.Baseline.Added)
			fmt.Fprintf(a.stdout, "Baseline deleted: %d\n", r.Baseline.Deleted)
		}
		return nil
	}
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
