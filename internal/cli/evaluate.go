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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/yaml"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
	"github.com/windplant/plantfinance/internal/config"
	"github.com/windplant/plantfinance/internal/controller"
	"github.com/windplant/plantfinance/internal/metrics"
	"github.com/windplant/plantfinance/pkg/finance"
)

func (a *app) evaluateCmd() *cobra.Command {
	var wrt []string

	cmd := &cobra.Command{
		Use:   "evaluate FILE...",
		Short: "Evaluate PlantFinance manifests and print them with their status",
		Long: `Evaluate reads PlantFinance and PlantFinanceList manifests, computes the
levelized cost of energy and its Jacobian for every plant, and prints the
evaluated objects. Plants that fail keep an Evaluated=False condition in the
output and make the command exit with a non-zero status.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEvaluate(cmd, args, wrt)
		},
	}

	cmd.Flags().StringSliceVar(&wrt, "wrt", nil,
		"only report d(lcoe)/d(input) for these inputs, e.g. turbine_cost,park_aep")
	return cmd
}

func (a *app) runEvaluate(cmd *cobra.Command, paths, wrt []string) error {
	ctx := ctrl.LoggerInto(cmd.Context(), a.logger)

	keep, err := parseWrt(wrt)
	if err != nil {
		return err
	}

	defaults := config.FinanceDefaultsData{}
	if a.cfg.DefaultsFile != "" {
		d, err := config.LoadFinanceDefaultsFile(a.cfg.DefaultsFile)
		if err != nil {
			return err
		}
		defaults = d
	}

	items, err := readManifests(paths)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	evOpts := []finance.Option{finance.WithLogger(a.logger)}
	if a.cfg.Verbose {
		evOpts = append(evOpts, finance.WithDiagnostics(a.stderr))
	}
	reconciler := &controller.PlantFinanceReconciler{
		Defaults:  defaults,
		Evaluator: finance.NewEvaluator(evOpts...),
		Metrics:   recorder,
		Workers:   a.cfg.Workers,
	}

	list := &financev1alpha1.PlantFinanceList{Items: items}
	evalErr := reconciler.ReconcileList(ctx, list)
	if keep != nil {
		for i := range list.Items {
			filterJacobian(&list.Items[i].Status, keep)
		}
	}

	if err := a.printEvaluated(list); err != nil {
		return errors.Join(evalErr, err)
	}
	if err := a.emitMetrics(registry); err != nil {
		return errors.Join(evalErr, err)
	}
	return evalErr
}

// parseWrt validates the input names given to --wrt. A nil set keeps every partial.
func parseWrt(names []string) (map[string]bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		p, err := finance.ParseParam(name)
		if err != nil {
			return nil, fmt.Errorf("invalid --wrt: %w", err)
		}
		keep[p.String()] = true
	}
	return keep, nil
}

func filterJacobian(st *financev1alpha1.PlantFinanceStatus, keep map[string]bool) {
	for name := range st.Jacobian {
		if !keep[name] {
			delete(st.Jacobian, name)
		}
	}
}

// printEvaluated prints a single object as itself and several as a list.
func (a *app) printEvaluated(list *financev1alpha1.PlantFinanceList) error {
	for i := range list.Items {
		list.Items[i].APIVersion = financev1alpha1.GroupVersion.String()
		list.Items[i].Kind = kindPlantFinance
	}
	list.APIVersion = financev1alpha1.GroupVersion.String()
	list.Kind = kindPlantFinanceList

	var obj any = list
	if len(list.Items) == 1 {
		obj = &list.Items[0]
	}

	var (
		out []byte
		err error
	)
	switch a.cfg.Output {
	case config.OutputJSON:
		out, err = json.MarshalIndent(obj, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yaml.Marshal(obj)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = a.stdout.Write(out)
	return err
}

func (a *app) emitMetrics(g prometheus.Gatherer) error {
	if a.cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(a.cfg.MetricsTextfile, g); err != nil {
			return err
		}
	}
	if a.cfg.PrintMetrics {
		return metrics.Dump(a.stderr, g)
	}
	return nil
}
