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

import "context"

// TurbineCostModel provides the capital cost of a single turbine (USD).
type TurbineCostModel interface {
	TurbineCost(ctx context.Context) (float64, error)
}

// BOSCostModel provides the balance-of-station cost per turbine (USD).
type BOSCostModel interface {
	BOSCost(ctx context.Context) (float64, error)
}

// OpexModel provides the average annual operating expense per turbine (USD/yr).
type OpexModel interface {
	AvgAnnualOpex(ctx context.Context) (float64, error)
}

// Energy is the annual energy production reported by an EnergyModel.
// A non-zero ParkAEP takes precedence over TurbineAEP.
type Energy struct {
	// ParkAEP is the net plant AEP (kWh/yr), zero when unknown.
	ParkAEP float64
	// TurbineAEP is the AEP of a single turbine before wake losses (kWh/yr).
	TurbineAEP float64
}

// EnergyModel provides the annual energy production of the plant.
type EnergyModel interface {
	AEP(ctx context.Context) (Energy, error)
}
