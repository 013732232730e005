package signature

import "sync"

// Job is one independent trajectory-plus-extraction computation. Run
// must be self-contained: the pipeline holds no global state, so jobs
// share nothing and order does not matter.
type Job struct {
	Name string
	Run  func() (*Bundle, error)
}

// Batch executes jobs across goroutines and returns the bundles in job
// order. Each job completes or fails atomically; on any failure Batch
// returns the first error and no bundles, so partial results never
// escape.
func Batch(jobs []Job) ([]*Bundle, error) {
	bundles := make([]*Bundle, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			bundles[idx], errs[idx] = jobs[idx].Run()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return bundles, nil
}
