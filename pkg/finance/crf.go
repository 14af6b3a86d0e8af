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
	"math"
)

// CapitalRecoveryFactor returns the fraction of an initial investment that an
// equal annual payment must recover to repay it over years at the given
// discount rate: r(1+r)^n / ((1+r)^n - 1), or 1/n for a zero rate.
//
// It can stand in for the fixed charge rate when only financing parameters
// are known.
func CapitalRecoveryFactor(rate, years float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("project lifetime must be > 0 years, got %g", years)
	}
	if rate <= -1 {
		return 0, fmt.Errorf("discount rate must be > -1, got %g", rate)
	}
	if rate == 0 {
		return 1 / years, nil
	}
	f := math.Pow(1+rate, years)
	return rate * f / (f - 1), nil
}
