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

// Package finance computes the Levelized Cost of Energy (LCOE) of a wind plant
// together with its analytic gradient.
//
// The evaluator turns a handful of scalar plant parameters (turbine count,
// per-turbine capital, balance-of-system and operating costs, machine rating,
// fixed charge rate and annual energy production) into cost-of-energy figures:
//
//	npr    = turbine_number * machine_rating                     [MW]
//	nec    = park_aep / (npr * 1000)                              [kWh/kW/yr]
//	icc    = (turbine_cost + turbine_bos_costs) / (rating * 1000) [USD/kW]
//	c_opex = turbine_avg_annual_opex / (rating * 1000)            [USD/kW/yr]
//	lcoe   = (icc * fixed_charge_rate + c_opex) / nec             [USD/kWh]
//
// The plant AEP is either supplied directly (park_aep != 0) or derived as
// turbine_number * turbine_aep * (1 - wake_loss_factor).
//
// Every evaluation also returns the Jacobian of lcoe with respect to all nine
// inputs, propagated with forward-mode dual numbers (see package dual), so
// gradient-based optimizers can consume it directly. Inputs that do not take
// part in the active AEP branch get explicit zero partials.
//
// Example usage:
//
//	in := finance.NewInputs()
//	in.TurbineNumber = 100
//	in.TurbineCost = 1_000_000
//	in.TurbineBOSCosts = 200_000
//	in.TurbineAvgAnnualOpex = 100_000
//	in.MachineRating = 5
//	in.ParkAEP = 1.5e9
//
//	res, err := finance.Evaluate(in)
//	if err != nil {
//	    // a required input is missing; do not retry with the same inputs
//	    return err
//	}
//	log.Info("plant evaluated", "lcoe", res.LCOE,
//	    "dLCOE/dTurbineCost", res.Partial(finance.TurbineCost))
//
// Error Handling:
//
// Missing required inputs (turbine count, turbine cost, machine rating, or
// both AEP sources) and a plant AEP that is not positive are fatal and
// returned as *ConfigurationError wrapping one of the Err* sentinels.
// Suspicious but usable inputs (zero BOS cost, zero opex, negative wake
// loss) are reported as Warnings on the Result and
// logged; the evaluation still completes.
//
// The evaluator holds no mutable state between calls and is safe for
// concurrent use; EvaluateAll fans independent input sets out over a bounded
// worker group.
package finance
