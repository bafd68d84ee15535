package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/wordrecog/internal/experiment"
	"github.com/abhisek/wordrecog/internal/store"
)

// openRepo opens the database at dbPath. The caller must call the returned
// close function.
func openRepo() (*experiment.Repo, func() error, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return experiment.NewRepo(st.KVRepo()), st.Close, nil
}

// stepTrials is the recorded block for one step.
type stepTrials struct {
	Step   int
	Trials []experiment.Trial
}

// loadAllTrials returns every recorded block for id in step order. Steps
// without data are skipped.
func loadAllTrials(ctx context.Context, repo *experiment.Repo, id string) ([]stepTrials, error) {
	var out []stepTrials
	for step := 1; step <= experiment.Steps; step++ {
		trials, err := repo.LoadTrials(ctx, id, step)
		if err != nil {
			return nil, fmt.Errorf("load step %d: %w", step, err)
		}
		if len(trials) == 0 {
			continue
		}
		out = append(out, stepTrials{Step: step, Trials: trials})
	}
	return out, nil
}
