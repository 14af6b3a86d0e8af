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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/windplant/plantfinance/pkg/finance"
)

type failingBOS struct{ err error }

func (f failingBOS) BOSCost(context.Context) (float64, error) { return 0, f.err }

func referenceStatic() Static {
	return Static{
		TurbineCostUSD:   1_000_000,
		BOSCostUSD:       200_000,
		AvgAnnualOpexUSD: 100_000,
		Energy:           Energy{ParkAEP: 1_500_000_000},
	}
}

func referenceParameters() Parameters {
	return Parameters{
		TurbineNumber:   100,
		MachineRating:   5,
		FixedChargeRate: finance.DefaultFixedChargeRate,
	}
}

var _ = Describe("Assembly", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("with static collaborators", func() {
		It("should evaluate the reference plant and pass collaborator outputs through", func() {
			out, err := NewStaticAssembly(referenceStatic(), nil).Run(ctx, referenceParameters())
			Expect(err).NotTo(HaveOccurred())

			Expect(out.LCOE).To(BeNumerically("~", (240*0.12+20)/3000.0, 1e-15))
			Expect(out.NetAEP).To(BeNumerically("~", 1.5e9, 1e-3))
			Expect(out.TurbineCost).To(Equal(1_000_000.0))
			Expect(out.BOSCost).To(Equal(200_000.0))
			Expect(out.AvgAnnualOpex).To(Equal(100_000.0))
			Expect(out.Result.Jacobian).To(HaveLen(len(finance.Params())))
			Expect(out.Result.AEPSource).To(Equal(finance.AEPSourceDirect))
		})

		It("should derive the plant AEP from the turbine AEP", func() {
			s := referenceStatic()
			s.Energy = Energy{TurbineAEP: 20_000_000}
			params := referenceParameters()
			params.WakeLossFactor = 0.25

			out, err := NewStaticAssembly(s, nil).Run(ctx, params)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.NetAEP).To(BeNumerically("~", 1.5e9, 1e-3))
			Expect(out.Result.AEPSource).To(Equal(finance.AEPSourceDerived))
			Expect(out.Inputs.WakeLossFactor).To(Equal(0.25))
		})

		It("should return finance configuration errors unchanged", func() {
			params := referenceParameters()
			params.TurbineNumber = 0

			out, err := NewStaticAssembly(referenceStatic(), nil).Run(ctx, params)
			Expect(out).To(BeNil())
			Expect(err).To(MatchError(finance.ErrTurbineCountNotInitialized))
			Expect(finance.IsConfigurationError(err)).To(BeTrue())
		})

		It("should stop on a cancelled context", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := NewStaticAssembly(referenceStatic(), nil).Run(cctx, referenceParameters())
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Context("with a failing collaborator", func() {
		It("should wrap the error with the collaborator name", func() {
			boom := errors.New("cost database unavailable")
			a := NewStaticAssembly(referenceStatic(), nil)
			a.BOS = failingBOS{err: boom}

			_, err := a.Run(ctx, referenceParameters())
			Expect(err).To(MatchError(boom))
			Expect(err.Error()).To(HavePrefix("BOS cost model:"))
			Expect(finance.IsConfigurationError(err)).To(BeFalse())
		})
	})

	Context("with a missing collaborator", func() {
		It("should refuse to run", func() {
			a := NewStaticAssembly(referenceStatic(), nil)
			a.Energy = nil

			_, err := a.Run(ctx, referenceParameters())
			Expect(err).To(MatchError(ErrMissingCollaborator))
			Expect(err.Error()).To(ContainSubstring("energy model"))
		})
	})
})
