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
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"

	"github.com/windplant/plantfinance/pkg/dual"
)

// debugLevel matches logging.DEBUG of the command-line tooling.
const debugLevel = 1

// Evaluator computes LCOE and its Jacobian. The zero value is not usable;
// create one with NewEvaluator.
type Evaluator struct {
	logger logr.Logger

	// diagMu serializes writes to diagnostics so concurrent evaluations
	// never interleave their reports.
	diagMu      sync.Mutex
	diagnostics io.Writer
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(logger logr.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithDiagnostics enables the verbose diagnostic report, written to w after
// every successful evaluation.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Evaluator) {
		e.diagnostics = w
	}
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{logger: logr.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes LCOE and its Jacobian with a default Evaluator.
func Evaluate(in Inputs) (*Result, error) {
	return NewEvaluator().Evaluate(in)
}

// Evaluate computes LCOE and its Jacobian for the given inputs.
// It returns a *ConfigurationError when a required input is missing.
func (e *Evaluator) Evaluate(in Inputs) (*Result, error) {
	res, err := evaluate(in.vector())
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		e.logger.Info("Plant finance input looks uninitialized, check the connections",
			"kind", w.Kind,
			"message", w.Message)
	}
	e.logger.V(debugLevel).Info("Evaluated plant finance",
		"aepSource", res.AEPSource,
		"parkAEP", res.ParkAEP,
		"netEnergyCapture", res.NetEnergyCapture,
		"initialCapitalCost", res.InitialCapitalCost,
		"operatingCost", res.OperatingCost,
		"lcoe", res.LCOE)

	if e.diagnostics != nil {
		e.diagMu.Lock()
		werr := WriteDiagnostics(e.diagnostics, in, res)
		e.diagMu.Unlock()
		if werr != nil {
			e.logger.Error(werr, "Failed to write plant finance diagnostics")
		}
	}
	return res, nil
}

// evaluate works on the raw input vector so that every input, including the
// turbine count, can be treated as a continuous variable.
func evaluate(x [numParams]float64) (*Result, error) {
	if x[TurbineNumber] <= 0 {
		return nil, configurationError(ErrTurbineCountNotInitialized,
			"turbine_number is %g", x[TurbineNumber])
	}
	if x[TurbineCost] <= 0 {
		return nil, configurationError(ErrTurbineCostNotInitialized,
			"turbine_cost is %g USD", x[TurbineCost])
	}
	if x[ParkAEP] == 0 && x[TurbineAEP] == 0 {
		return nil, configurationError(ErrAEPNotConnected,
			"both turbine_aep and park_aep are 0 kWh")
	}
	if x[MachineRating] <= 0 {
		return nil, configurationError(ErrMachineRatingNotInitialized,
			"machine_rating is %g MW", x[MachineRating])
	}

	res := &Result{}
	if x[TurbineBOSCosts] <= 0 {
		res.Warnings = append(res.Warnings, Warning{
			Kind:    WarningBOSCostsMissing,
			Message: fmt.Sprintf("turbine_bos_costs is %g USD", x[TurbineBOSCosts]),
		})
	}
	if x[TurbineAvgAnnualOpex] <= 0 {
		res.Warnings = append(res.Warnings, Warning{
			Kind:    WarningOpexMissing,
			Message: fmt.Sprintf("turbine_avg_annual_opex is %g USD", x[TurbineAvgAnnualOpex]),
		})
	}

	v := func(p Param) dual.Number {
		return dual.Var(x[p], int(p), int(numParams))
	}
	one := dual.Const(1, int(numParams))

	var park dual.Number
	if x[ParkAEP] != 0 {
		park = v(ParkAEP)
		res.AEPSource = AEPSourceDirect
	} else {
		if wlf := x[WakeLossFactor]; wlf < 0 || wlf >= 1 {
			res.Warnings = append(res.Warnings, Warning{
				Kind:    WarningWakeLossOutOfRange,
				Message: fmt.Sprintf("wake_loss_factor is %g, expected a fraction in [0,1)", wlf),
			})
		}
		if x[TurbineAEP] < 0 {
			return nil, configurationError(ErrNonPositiveAEP,
				"turbine_aep is %g kWh", x[TurbineAEP])
		}
		park = v(TurbineNumber).Mul(v(TurbineAEP)).Mul(one.Sub(v(WakeLossFactor)))
		res.AEPSource = AEPSourceDerived
	}
	if park.Value <= 0 {
		return nil, configurationError(ErrNonPositiveAEP,
			"%s plant AEP is %g kWh", res.AEPSource, park.Value)
	}

	rating := v(MachineRating)
	ratingKW := rating.Scale(kWPerMW)
	npr := v(TurbineNumber).Mul(rating)
	nec := park.Div(npr.Scale(kWPerMW))
	icc := v(TurbineCost).Add(v(TurbineBOSCosts)).Div(ratingKW)
	opex := v(TurbineAvgAnnualOpex).Div(ratingKW)
	lcoe := icc.Mul(v(FixedChargeRate)).Add(opex).Div(nec)

	res.ParkAEP = park.Value
	res.NetParkRating = npr.Value
	res.NetEnergyCapture = nec.Value
	res.InitialCapitalCost = icc.Value
	res.OperatingCost = opex.Value
	res.LCOE = lcoe.Value
	res.Jacobian = make(Jacobian, numParams)
	for _, p := range Params() {
		res.Jacobian[Partial{Output: OutputLCOE, Input: p.String()}] = lcoe.Partial(int(p))
	}
	return res, nil
}
