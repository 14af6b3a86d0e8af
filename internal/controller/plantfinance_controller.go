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
	"fmt"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/clock"
	ctrl "sigs.k8s.io/controller-runtime"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
	"github.com/windplant/plantfinance/internal/config"
	"github.com/windplant/plantfinance/internal/logging"
	"github.com/windplant/plantfinance/internal/metrics"
	"github.com/windplant/plantfinance/internal/plant"
	"github.com/windplant/plantfinance/pkg/finance"
)

// PlantFinanceReconciler evaluates PlantFinance resources.
type PlantFinanceReconciler struct {
	// Defaults holds the global and per-plant finance defaults.
	Defaults config.FinanceDefaultsData

	// Evaluator is shared by all reconciliations. When nil each run creates
	// one bound to the request logger.
	Evaluator *finance.Evaluator

	// Metrics may be nil.
	Metrics *metrics.Recorder

	// Workers bounds the concurrency of ReconcileList (<= 0 means unbounded).
	Workers int

	// Clock defaults to the real clock.
	Clock clock.PassiveClock
}

func (r *PlantFinanceReconciler) clock() clock.PassiveClock {
	if r.Clock == nil {
		return clock.RealClock{}
	}
	return r.Clock
}

// Reconcile evaluates pf and updates its status in place.
// A returned error that satisfies finance.IsConfigurationError is fatal.
func (r *PlantFinanceReconciler) Reconcile(ctx context.Context, pf *financev1alpha1.PlantFinance) error {
	plantID := pf.EffectivePlantID()
	logger := ctrl.LoggerFrom(ctx).WithValues("plantFinance", pf.Name, "plant", plantID)
	ctx = ctrl.LoggerInto(ctx, logger)

	now := metav1.NewTime(r.clock().Now())
	conditions := pf.Status.Conditions
	pf.Status = financev1alpha1.PlantFinanceStatus{
		LastEvaluationTime: now,
		Conditions:         conditions,
	}

	params, err := r.resolveParameters(pf)
	if err != nil {
		r.Metrics.ObserveEvaluation(plantID, nil, err, 0)
		return r.fail(ctx, pf, financev1alpha1.ReasonInvalidConfiguration, err)
	}
	pf.Status.FixedChargeRate = params.FixedChargeRate

	logger.V(logging.DEBUG).Info("Resolved plant parameters",
		"turbineNumber", params.TurbineNumber,
		"machineRating", params.MachineRating,
		"fixedChargeRate", params.FixedChargeRate,
		"wakeLossFactor", params.WakeLossFactor)

	assembly := plant.NewStaticAssembly(plant.Static{
		TurbineCostUSD:   pf.Spec.TurbineCost,
		BOSCostUSD:       pf.Spec.TurbineBOSCosts,
		AvgAnnualOpexUSD: pf.Spec.TurbineAvgAnnualOpex,
		Energy: plant.Energy{
			ParkAEP:    pf.Spec.ParkAEP,
			TurbineAEP: pf.Spec.TurbineAEP,
		},
	}, r.Evaluator)

	start := r.clock().Now()
	out, err := assembly.Run(ctx, params)
	var res *finance.Result
	if out != nil {
		res = out.Result
	}
	r.Metrics.ObserveEvaluation(plantID, res, err, r.clock().Since(start))

	if err != nil {
		reason := financev1alpha1.ReasonEvaluationFailed
		if finance.IsConfigurationError(err) {
			reason = financev1alpha1.ReasonInvalidConfiguration
		}
		return r.fail(ctx, pf, reason, err)
	}

	r.applyResult(pf, res)
	logger.Info("Plant evaluated",
		"lcoe", res.LCOE,
		"aepSource", res.AEPSource,
		"warnings", len(res.Warnings))
	return nil
}

// ReconcileList evaluates every item of list concurrently. Items fail
// independently; the returned error joins the failures of all items.
func (r *PlantFinanceReconciler) ReconcileList(ctx context.Context, list *financev1alpha1.PlantFinanceList) error {
	inputs := make([]*financev1alpha1.PlantFinance, len(list.Items))
	for i := range list.Items {
		inputs[i] = &list.Items[i]
	}
	return r.reconcileAll(ctx, inputs)
}

func (r *PlantFinanceReconciler) resolveParameters(pf *financev1alpha1.PlantFinance) (plant.Parameters, error) {
	defaults := r.Defaults.GetPlantDefaults(pf.EffectivePlantID())

	params := plant.Parameters{TurbineNumber: pf.Spec.TurbineNumber}

	switch {
	case pf.Spec.MachineRating != nil:
		params.MachineRating = *pf.Spec.MachineRating
	case defaults.MachineRating != nil:
		params.MachineRating = *defaults.MachineRating
	}

	switch {
	case pf.Spec.WakeLossFactor != nil:
		params.WakeLossFactor = *pf.Spec.WakeLossFactor
	case defaults.WakeLossFactor != nil:
		params.WakeLossFactor = *defaults.WakeLossFactor
	}

	switch {
	case pf.Spec.FixedChargeRate != nil:
		params.FixedChargeRate = *pf.Spec.FixedChargeRate
	case pf.Spec.Financing != nil:
		fcr, err := finance.CapitalRecoveryFactor(pf.Spec.Financing.DiscountRate, pf.Spec.Financing.ProjectLifetime)
		if err != nil {
			return params, fmt.Errorf("invalid spec.financing: %w", err)
		}
		params.FixedChargeRate = fcr
	default:
		fcr, err := defaults.ResolveFixedChargeRate()
		if err != nil {
			return params, fmt.Errorf("invalid finance defaults: %w", err)
		}
		params.FixedChargeRate = fcr
	}
	return params, nil
}

func (r *PlantFinanceReconciler) applyResult(pf *financev1alpha1.PlantFinance, res *finance.Result) {
	st := &pf.Status
	st.LCOE = res.LCOE
	st.ParkAEP = res.ParkAEP
	st.AEPSource = string(res.AEPSource)
	st.NetParkRating = res.NetParkRating
	st.NetEnergyCapture = res.NetEnergyCapture
	st.InitialCapitalCost = res.InitialCapitalCost
	st.OperatingCost = res.OperatingCost
	st.Jacobian = res.Jacobian.ByInput()
	for _, w := range res.Warnings {
		st.Warnings = append(st.Warnings, financev1alpha1.PlantWarning{
			Kind:    string(w.Kind),
			Message: w.Message,
		})
	}

	meta.SetStatusCondition(&st.Conditions, metav1.Condition{
		Type:               financev1alpha1.TypeEvaluated,
		Status:             metav1.ConditionTrue,
		ObservedGeneration: pf.Generation,
		Reason:             financev1alpha1.ReasonEvaluationSucceeded,
		Message:            fmt.Sprintf("LCOE is %.6f USD/kWh", res.LCOE),
	})

	if len(res.Warnings) == 0 {
		meta.SetStatusCondition(&st.Conditions, metav1.Condition{
			Type:               financev1alpha1.TypeInputsComplete,
			Status:             metav1.ConditionTrue,
			ObservedGeneration: pf.Generation,
			Reason:             financev1alpha1.ReasonInputsComplete,
			Message:            "All inputs are set and in range",
		})
		return
	}

	kinds := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		kinds = append(kinds, string(w.Kind))
	}
	sort.Strings(kinds)
	meta.SetStatusCondition(&st.Conditions, metav1.Condition{
		Type:               financev1alpha1.TypeInputsComplete,
		Status:             metav1.ConditionFalse,
		ObservedGeneration: pf.Generation,
		Reason:             financev1alpha1.ReasonDataQualityWarning,
		Message:            "Data-quality warnings: " + strings.Join(kinds, ", "),
	})
}

func (r *PlantFinanceReconciler) fail(ctx context.Context, pf *financev1alpha1.PlantFinance, reason string, err error) error {
	ctrl.LoggerFrom(ctx).Error(err, "Plant evaluation failed", "reason", reason)

	meta.SetStatusCondition(&pf.Status.Conditions, metav1.Condition{
		Type:               financev1alpha1.TypeEvaluated,
		Status:             metav1.ConditionFalse,
		ObservedGeneration: pf.Generation,
		Reason:             reason,
		Message:            err.Error(),
	})
	meta.RemoveStatusCondition(&pf.Status.Conditions, financev1alpha1.TypeInputsComplete)
	return fmt.Errorf("plant finance %s: %w", pf.Name, err)
}
