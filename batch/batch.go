// Package batch demonstrates the concurrency contract of spec.md §5:
// the core itself is single-threaded, but callers may analyze
// disjoint CFGs in parallel as long as each goroutine uses its own
// variable factory and no CFG is mutated while another goroutine
// iterates it. This package runs Simplify+Check over a batch of
// independent CFGs concurrently via errgroup, turning the fatal
// crabfault panics those passes raise into ordinary errors at the
// batch boundary; the core passes themselves never return error.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/crabir/crab/crabfault"
	"github.com/crabir/crab/ir"
	"github.com/crabir/crab/typecheck"
)

// Job pairs a CFG with a human-readable name for error reporting.
type Job[L comparable] struct {
	Name string
	CFG  *ir.CFG[L]
}

// Options configures a batch run.
type Options struct {
	// Concurrency caps the number of jobs analyzed at once. Zero means unlimited.
	Concurrency int
}

// Run simplifies and type-checks every job's CFG concurrently,
// recovering any crabfault.Fault panic into an error tagged with the
// job's name. The first error is returned. Jobs do not observe ctx
// or each other's failure: every job runs to completion, and
// independent jobs whose CFGs share no state do not affect each other.
func Run[L comparable](ctx context.Context, jobs []Job[L], opts Options) error {
	g, _ := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if f, ok := r.(*crabfault.Fault); ok {
						err = fmt.Errorf("batch: job %q: %w", job.Name, f)
						return
					}
					panic(r)
				}
			}()
			job.CFG.Simplify()
			typecheck.Check(job.CFG)
			return nil
		})
	}
	return g.Wait()
}
