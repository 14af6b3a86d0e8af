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

import "fmt"

const (
	// DefaultFixedChargeRate is the fixed charge rate used when none is configured.
	DefaultFixedChargeRate = 0.12

	// OutputLCOE is the name of the evaluator output in Jacobian keys.
	OutputLCOE = "lcoe"

	kWPerMW = 1000.0
)

// Param identifies one of the evaluator inputs.
type Param int

// enumeration of Param, in Jacobian order
const (
	TurbineCost Param = iota
	TurbineNumber
	TurbineBOSCosts
	TurbineAvgAnnualOpex
	FixedChargeRate
	WakeLossFactor
	TurbineAEP
	ParkAEP
	MachineRating

	numParams
)

var paramNames = [numParams]string{
	TurbineCost:          "turbine_cost",
	TurbineNumber:        "turbine_number",
	TurbineBOSCosts:      "turbine_bos_costs",
	TurbineAvgAnnualOpex: "turbine_avg_annual_opex",
	FixedChargeRate:      "fixed_charge_rate",
	WakeLossFactor:       "wake_loss_factor",
	TurbineAEP:           "turbine_aep",
	ParkAEP:              "park_aep",
	MachineRating:        "machine_rating",
}

// String returns the input name used in Jacobian keys.
func (p Param) String() string {
	if p < 0 || p >= numParams {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramNames[p]
}

// Params returns all inputs in Jacobian order.
func Params() []Param {
	out := make([]Param, numParams)
	for i := range out {
		out[i] = Param(i)
	}
	return out
}

// ParseParam returns the Param with the given input name.
func ParseParam(name string) (Param, error) {
	for i, n := range paramNames {
		if n == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("unknown plant finance input %q", name)
}

// Inputs holds the plant parameters of one evaluation.
type Inputs struct {
	// TurbineNumber is the number of turbines in the plant.
	TurbineNumber int
	// TurbineCost is the capital cost of a single turbine (USD).
	TurbineCost float64
	// TurbineBOSCosts is the balance-of-system cost per turbine (USD).
	TurbineBOSCosts float64
	// TurbineAvgAnnualOpex is the average annual operating expenditure per turbine (USD/yr).
	TurbineAvgAnnualOpex float64
	// ParkAEP is the net annual energy production of the plant (kWh/yr).
	// When zero, it is derived from TurbineAEP, TurbineNumber and WakeLossFactor.
	ParkAEP float64
	// TurbineAEP is the annual energy production of a single turbine (kWh/yr).
	TurbineAEP float64
	// WakeLossFactor is the fraction of AEP lost to wakes, in [0,1).
	WakeLossFactor float64
	// MachineRating is the rated power of a single turbine (MW).
	MachineRating float64
	// FixedChargeRate is the annualized capital recovery fraction.
	FixedChargeRate float64
}

// NewInputs returns Inputs with the default fixed charge rate set.
func NewInputs() Inputs {
	return Inputs{FixedChargeRate: DefaultFixedChargeRate}
}

// vector lays the inputs out in Param order.
func (in Inputs) vector() [numParams]float64 {
	var x [numParams]float64
	x[TurbineCost] = in.TurbineCost
	x[TurbineNumber] = float64(in.TurbineNumber)
	x[TurbineBOSCosts] = in.TurbineBOSCosts
	x[TurbineAvgAnnualOpex] = in.TurbineAvgAnnualOpex
	x[FixedChargeRate] = in.FixedChargeRate
	x[WakeLossFactor] = in.WakeLossFactor
	x[TurbineAEP] = in.TurbineAEP
	x[ParkAEP] = in.ParkAEP
	x[MachineRating] = in.MachineRating
	return x
}

// AEPSource tells which branch produced the plant AEP.
type AEPSource string

const (
	// AEPSourceDirect means park_aep was supplied.
	AEPSourceDirect AEPSource = "direct"
	// AEPSourceDerived means park_aep was derived from turbine_aep.
	AEPSourceDerived AEPSource = "derived"
)

// Partial identifies one Jacobian entry.
type Partial struct {
	Output string
	Input  string
}

// Jacobian maps (output, input) pairs to partial derivatives.
type Jacobian map[Partial]float64

// Wrt returns d(lcoe)/d(p).
func (j Jacobian) Wrt(p Param) float64 {
	return j[Partial{Output: OutputLCOE, Input: p.String()}]
}

// ByInput returns the lcoe partials keyed by input name.
func (j Jacobian) ByInput() map[string]float64 {
	out := make(map[string]float64, len(j))
	for k, v := range j {
		if k.Output == OutputLCOE {
			out[k.Input] = v
		}
	}
	return out
}

// WarningKind classifies a data-quality warning.
type WarningKind string

const (
	WarningBOSCostsMissing    WarningKind = "BOSCostsMissing"
	WarningOpexMissing        WarningKind = "OpexMissing"
	WarningWakeLossOutOfRange WarningKind = "WakeLossOutOfRange"
)

// Warning is a non-fatal data-quality finding. The evaluation that raised it
// still produced a result, but the caller should sanity-check its inputs.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// Result is the outcome of one evaluation.
type Result struct {
	// ParkAEP is the net plant AEP actually used (kWh/yr).
	ParkAEP float64
	// AEPSource tells whether ParkAEP was supplied or derived.
	AEPSource AEPSource
	// NetParkRating is turbine_number * machine_rating (MW).
	NetParkRating float64
	// NetEnergyCapture is the plant AEP per installed kW (kWh/kW/yr).
	NetEnergyCapture float64
	// InitialCapitalCost is the turbine plus BOS cost per kW (USD/kW).
	InitialCapitalCost float64
	// OperatingCost is the annual opex per kW (USD/kW/yr).
	OperatingCost float64
	// LCOE is the levelized cost of energy (USD/kWh).
	LCOE float64
	// Jacobian holds d(lcoe)/d(input) for all nine inputs.
	Jacobian Jacobian
	// Warnings lists the data-quality warnings raised during evaluation.
	Warnings []Warning
}

// Partial returns d(lcoe)/d(p).
func (r *Result) Partial(p Param) float64 {
	return r.Jacobian.Wrt(p)
}

// Gradient returns the lcoe partials in Param order.
func (r *Result) Gradient() []float64 {
	g := make([]float64, numParams)
	for _, p := range Params() {
		g[p] = r.Jacobian.Wrt(p)
	}
	return g
}
