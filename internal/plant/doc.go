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

// Package plant assembles a wind plant cost model from its collaborators.
//
// An Assembly gathers the outputs of four sub-models and feeds them into the
// finance evaluator:
//
//	TurbineCostModel ──► turbine_cost ──┐
//	BOSCostModel     ──► bos_cost     ──┤
//	OpexModel        ──► avg_annual_opex┼──► finance.Evaluator ──► lcoe
//	EnergyModel      ──► net_aep      ──┘
//
// Selected collaborator outputs are passed through to the Outputs next to the
// LCOE and its Jacobian. The sub-models here are static: their values come
// from a PlantFinance manifest. Physics-based models can be plugged in by
// implementing the interfaces.
package plant
