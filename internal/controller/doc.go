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

// Package controller evaluates PlantFinance resources.
//
// The PlantFinanceReconciler resolves the effective inputs of a plant,
// runs the plant assembly and writes the outcome back into the resource
// status.
//
// # Reconciliation Flow
//
//  1. Resolve the plant ID (spec.plantID, else metadata.name)
//  2. Resolve optional inputs: manifest value, then the per-plant entry of
//     the finance defaults, then the global entry, then built-in defaults
//  3. Run the plant assembly (collaborators + finance evaluator)
//  4. Record metrics
//  5. Update status (LCOE, intermediates, Jacobian, warnings)
//  6. Set conditions (Evaluated, InputsComplete)
//
// # Fixed Charge Rate Precedence
//
//	spec.fixedChargeRate
//	  > capital recovery factor of spec.financing
//	  > defaults fixedChargeRate
//	  > capital recovery factor of defaults discountRate/projectLifetime
//	  > finance.DefaultFixedChargeRate (0.12)
//
// # Error Handling
//
// A missing required input is a configuration error: Evaluated is set to
// False with reason InvalidConfiguration and the error is returned. The
// same inputs always fail the same way, so callers must not retry.
// Data-quality warnings never fail a reconciliation; they set
// InputsComplete to False with reason DataQualityWarning.
package controller
