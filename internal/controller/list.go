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

package controller

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	ctrl "sigs.k8s.io/controller-runtime"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
)

func (r *PlantFinanceReconciler) reconcileAll(ctx context.Context, items []*financev1alpha1.PlantFinance) error {
	errs := make([]error, len(items))

	// plain Group: one failing plant must not cancel the others
	var g errgroup.Group
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, pf := range items {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = r.Reconcile(ctx, pf)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	ctrl.LoggerFrom(ctx).Info("Reconciled plant finance list",
		"total", len(items),
		"failed", failed)
	return errors.Join(errs...)
}
