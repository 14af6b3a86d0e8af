/*
Copyright 2025 The plantfinance Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package finance

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one evaluation in a batch.
type Outcome struct {
	Result *Result
	Err    error
}

// EvaluateAll evaluates independent input sets in parallel, running at most
// workers evaluations at once (workers <= 0 means unbounded). Outcomes are
// returned in input order. A configuration error in one input is recorded in
// its Outcome and never stops the others; cancelling ctx stops scheduling and
// the unscheduled inputs get ctx.Err().
func EvaluateAll(ctx context.Context, ev *Evaluator, inputs []Inputs, workers int) ([]Outcome, error) {
	if ev == nil {
		ev = NewEvaluator()
	}
	out := make([]Outcome, len(inputs))
	done := make([]bool, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ev.Evaluate(inputs[i])
			out[i] = Outcome{Result: res, Err: err}
			done[i] = true
			return nil
		})
	}
	err := g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		for i := range out {
			if !done[i] {
				out[i].Err = ctxErr
			}
		}
		return out, ctxErr
	}
	return out, err
}
