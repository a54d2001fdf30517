package synth

import (
	"context"
	"sync"

	"github.com/san-kum/skysynth/internal/config"
)

// Ensemble builds many realizations of one scene concurrently, one
// seed per run starting at seedStart. Both the catalog draw and the
// noise change with the seed, so the runs are independent realizations
// of the same statistical scene.
type Ensemble struct {
	scene     *config.Scene
	numRuns   int
	seedStart int64
}

func NewEnsemble(scene *config.Scene, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{scene: scene, numRuns: numRuns, seedStart: seedStart}
}

// Run builds every realization and returns them in seed order. The
// first build error aborts the whole ensemble.
func (e *Ensemble) Run(ctx context.Context) ([]*Dataset, error) {
	results := make([]*Dataset, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			s := *e.scene
			s.Seed = e.seedStart + int64(idx)

			results[idx], errs[idx] = Build(&s)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
