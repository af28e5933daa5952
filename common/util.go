package common

import (
	"errors"
	"sync"
)

// RunParallel runs the given functions in parallel goroutines and aggregates
// their errors with errors.Join. It returns nil when every function succeeds.
// The batch driver uses it to parse all per-caller IR files concurrently
// before resolution starts.
func RunParallel(funcs ...func() error) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(funcs))

	for _, fn := range funcs {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				errs <- err
			}
		}(fn)
	}

	wg.Wait()
	close(errs)

	var all []error
	for err := range errs {
		all = append(all, err)
	}
	return errors.Join(all...)
}
