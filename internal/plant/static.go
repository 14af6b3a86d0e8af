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

	"github.com/windplant/plantfinance/pkg/finance"
)

// Static serves fixed collaborator values, typically read from a manifest.
// It implements all four collaborator interfaces.
type Static struct {
	TurbineCostUSD   float64
	BOSCostUSD       float64
	AvgAnnualOpexUSD float64
	Energy           Energy
}

var (
	_ TurbineCostModel = Static{}
	_ BOSCostModel     = Static{}
	_ OpexModel        = Static{}
	_ EnergyModel      = Static{}
)

func (s Static) TurbineCost(ctx context.Context) (float64, error) {
	return s.TurbineCostUSD, ctx.Err()
}

func (s Static) BOSCost(ctx context.Context) (float64, error) {
	return s.BOSCostUSD, ctx.Err()
}

func (s Static) AvgAnnualOpex(ctx context.Context) (float64, error) {
	return s.AvgAnnualOpexUSD, ctx.Err()
}

func (s Static) AEP(ctx context.Context) (Energy, error) {
	return s.Energy, ctx.Err()
}

// NewStaticAssembly returns an Assembly whose collaborators all serve s.
func NewStaticAssembly(s Static, ev *finance.Evaluator) *Assembly {
	return &Assembly{
		TurbineCost: s,
		BOS:         s,
		Opex:        s,
		Energy:      s,
		Evaluator:   ev,
	}
}
