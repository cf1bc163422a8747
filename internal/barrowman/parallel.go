package barrowman

import (
	"sync"

	"github.com/san-kum/barrow/internal/geometry"
)

// Sweep computes the overall CoP for several rockets concurrently.
// Rockets are independent, so each runs in its own goroutine; results keep
// the input order. The first per-rocket error fails the whole sweep,
// matching the abort semantics of a single computation.
func Sweep(rockets []geometry.Rocket) ([]*Result, error) {
	results := make([]*Result, len(rockets))
	errs := make([]error, len(rockets))

	var wg sync.WaitGroup
	for i := range rockets {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = ComputeOverall(rockets[idx])
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
