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

package plant

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/windplant/plantfinance/internal/logging"
	"github.com/windplant/plantfinance/pkg/finance"
)

// ErrMissingCollaborator is returned when an Assembly lacks a sub-model.
var ErrMissingCollaborator = errors.New("collaborator not connected")

// Parameters are the plant-level inputs that do not come from a collaborator.
type Parameters struct {
	TurbineNumber   int
	MachineRating   float64
	FixedChargeRate float64
	WakeLossFactor  float64
}

// Outputs are the evaluated LCOE plus the collaborator pass-throughs.
type Outputs struct {
	// LCOE is the levelized cost of energy (USD/kWh).
	LCOE float64
	// NetAEP is the plant AEP used by the evaluation (kWh/yr).
	NetAEP float64
	// AvgAnnualOpex is the per-turbine opex from the OpexModel (USD/yr).
	AvgAnnualOpex float64
	// BOSCost is the per-turbine BOS cost from the BOSCostModel (USD).
	BOSCost float64
	// TurbineCost is the per-turbine cost from the TurbineCostModel (USD).
	TurbineCost float64

	// Inputs are the values handed to the finance evaluator.
	Inputs finance.Inputs
	// Result is the full finance result, including the Jacobian and warnings.
	Result *finance.Result
}

// Assembly connects the collaborator models to the finance evaluator.
type Assembly struct {
	TurbineCost TurbineCostModel
	BOS         BOSCostModel
	Opex        OpexModel
	Energy      EnergyModel

	// Evaluator defaults to finance.NewEvaluator() when nil.
	Evaluator *finance.Evaluator
}

// Run queries the collaborators concurrently and evaluates the plant.
// Collaborator failures are wrapped with the collaborator name; finance
// configuration errors are returned unchanged so callers can detect them
// with finance.IsConfigurationError.
func (a *Assembly) Run(ctx context.Context, params Parameters) (*Outputs, error) {
	logger := ctrl.LoggerFrom(ctx)

	if err := a.validate(); err != nil {
		return nil, err
	}

	in := finance.Inputs{
		TurbineNumber:   params.TurbineNumber,
		MachineRating:   params.MachineRating,
		FixedChargeRate: params.FixedChargeRate,
		WakeLossFactor:  params.WakeLossFactor,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := a.TurbineCost.TurbineCost(gctx)
		if err != nil {
			return fmt.Errorf("turbine cost model: %w", err)
		}
		in.TurbineCost = v
		return nil
	})
	g.Go(func() error {
		v, err := a.BOS.BOSCost(gctx)
		if err != nil {
			return fmt.Errorf("BOS cost model: %w", err)
		}
		in.TurbineBOSCosts = v
		return nil
	})
	g.Go(func() error {
		v, err := a.Opex.AvgAnnualOpex(gctx)
		if err != nil {
			return fmt.Errorf("opex model: %w", err)
		}
		in.TurbineAvgAnnualOpex = v
		return nil
	})
	g.Go(func() error {
		e, err := a.Energy.AEP(gctx)
		if err != nil {
			return fmt.Errorf("energy model: %w", err)
		}
		in.ParkAEP = e.ParkAEP
		in.TurbineAEP = e.TurbineAEP
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.V(logging.TRACE).Info("Collaborator outputs gathered",
		"turbineCost", in.TurbineCost,
		"bosCost", in.TurbineBOSCosts,
		"avgAnnualOpex", in.TurbineAvgAnnualOpex,
		"parkAEP", in.ParkAEP,
		"turbineAEP", in.TurbineAEP)

	ev := a.Evaluator
	if ev == nil {
		ev = finance.NewEvaluator(finance.WithLogger(logger))
	}
	res, err := ev.Evaluate(in)
	if err != nil {
		return nil, err
	}

	return &Outputs{
		LCOE:          res.LCOE,
		NetAEP:        res.ParkAEP,
		AvgAnnualOpex: in.TurbineAvgAnnualOpex,
		BOSCost:       in.TurbineBOSCosts,
		TurbineCost:   in.TurbineCost,
		Inputs:        in,
		Result:        res,
	}, nil
}

func (a *Assembly) validate() error {
	switch {
	case a.TurbineCost == nil:
		return fmt.Errorf("turbine cost model: %w", ErrMissingCollaborator)
	case a.BOS == nil:
		return fmt.Errorf("BOS cost model: %w", ErrMissingCollaborator)
	case a.Opex == nil:
		return fmt.Errorf("opex model: %w", ErrMissingCollaborator)
	case a.Energy == nil:
		return fmt.Errorf("energy model: %w", ErrMissingCollaborator)
	}
	return nil
}
