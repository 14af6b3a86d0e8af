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

package controller

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	clocktesting "k8s.io/utils/clock/testing"
	"k8s.io/utils/ptr"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
	"github.com/windplant/plantfinance/internal/config"
	"github.com/windplant/plantfinance/internal/metrics"
	"github.com/windplant/plantfinance/pkg/finance"
)

func makePlantFinance(name string) *financev1alpha1.PlantFinance {
	return &financev1alpha1.PlantFinance{
		ObjectMeta: metav1.ObjectMeta{Name: name, Generation: 3},
		Spec: financev1alpha1.PlantFinanceSpec{
			TurbineCost:          1_000_000,
			TurbineNumber:        100,
			TurbineBOSCosts:      200_000,
			TurbineAvgAnnualOpex: 100_000,
			ParkAEP:              1_500_000_000,
			MachineRating:        ptr.To(5.0),
		},
	}
}

// evaluationCount reads plantfinance_evaluations_total{result} from reg.
func evaluationCount(reg prometheus.Gatherer, result string) float64 {
	families, err := reg.Gather()
	Expect(err).NotTo(HaveOccurred())
	for _, mf := range families {
		if mf.GetName() != "plantfinance_evaluations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" && l.GetValue() == result {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

var _ = Describe("PlantFinanceReconciler", func() {
	var (
		ctx        context.Context
		fakeClock  *clocktesting.FakePassiveClock
		registry   *prometheus.Registry
		recorder   *metrics.Recorder
		reconciler *PlantFinanceReconciler
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeClock = clocktesting.NewFakePassiveClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		registry = prometheus.NewRegistry()
		var err error
		recorder, err = metrics.NewRecorder(registry)
		Expect(err).NotTo(HaveOccurred())

		reconciler = &PlantFinanceReconciler{
			Defaults: config.FinanceDefaultsData{},
			Metrics:  recorder,
			Workers:  2,
			Clock:    fakeClock,
		}
	})

	Context("with complete inputs", func() {
		It("should fill the status and set both conditions", func() {
			pf := makePlantFinance("north")
			Expect(reconciler.Reconcile(ctx, pf)).To(Succeed())

			st := pf.Status
			Expect(st.LCOE).To(BeNumerically("~", (240*0.12+20)/3000.0, 1e-15))
			Expect(st.AEPSource).To(Equal(string(finance.AEPSourceDirect)))
			Expect(st.NetParkRating).To(BeNumerically("~", 500, 1e-12))
			Expect(st.FixedChargeRate).To(Equal(finance.DefaultFixedChargeRate))
			Expect(st.Jacobian).To(HaveLen(len(finance.Params())))
			Expect(st.Jacobian).To(HaveKeyWithValue("machine_rating", BeNumerically("~", 0, 1e-16)))
			Expect(st.Warnings).To(BeEmpty())
			Expect(st.LastEvaluationTime.Time).To(Equal(fakeClock.Now()))

			evaluated := meta.FindStatusCondition(st.Conditions, financev1alpha1.TypeEvaluated)
			Expect(evaluated).NotTo(BeNil())
			Expect(evaluated.Status).To(Equal(metav1.ConditionTrue))
			Expect(evaluated.Reason).To(Equal(financev1alpha1.ReasonEvaluationSucceeded))
			Expect(evaluated.ObservedGeneration).To(Equal(int64(3)))
			Expect(meta.IsStatusConditionTrue(st.Conditions, financev1alpha1.TypeInputsComplete)).To(BeTrue())

			Expect(evaluationCount(registry, metrics.ResultSuccess)).To(Equal(1.0))
		})

		It("should report data-quality warnings without failing", func() {
			pf := makePlantFinance("north")
			pf.Spec.TurbineBOSCosts = 0
			pf.Spec.TurbineAvgAnnualOpex = 0

			Expect(reconciler.Reconcile(ctx, pf)).To(Succeed())
			Expect(pf.Status.Warnings).To(HaveLen(2))

			cond := meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeInputsComplete)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(metav1.ConditionFalse))
			Expect(cond.Reason).To(Equal(financev1alpha1.ReasonDataQualityWarning))
			Expect(cond.Message).To(ContainSubstring("BOSCostsMissing, OpexMissing"))
		})
	})

	Context("when resolving defaults", func() {
		BeforeEach(func() {
			reconciler.Defaults = config.FinanceDefaultsData{
				config.GlobalDefaultsKey: {
					FixedChargeRate: ptr.To(0.10),
					MachineRating:   ptr.To(3.0),
					WakeLossFactor:  ptr.To(0.2),
				},
				"north": {
					PlantID:       "north",
					MachineRating: ptr.To(5.0),
				},
			}
		})

		It("should prefer the manifest over defaults", func() {
			pf := makePlantFinance("south")
			pf.Spec.FixedChargeRate = ptr.To(0.08)
			pf.Spec.MachineRating = ptr.To(6.0)

			params, err := reconciler.resolveParameters(pf)
			Expect(err).NotTo(HaveOccurred())
			Expect(params.FixedChargeRate).To(Equal(0.08))
			Expect(params.MachineRating).To(Equal(6.0))
			Expect(params.WakeLossFactor).To(Equal(0.2))
		})

		It("should prefer the plant override over global defaults", func() {
			pf := makePlantFinance("north")
			pf.Spec.MachineRating = nil

			params, err := reconciler.resolveParameters(pf)
			Expect(err).NotTo(HaveOccurred())
			Expect(params.MachineRating).To(Equal(5.0))
			Expect(params.FixedChargeRate).To(Equal(0.10))
		})

		It("should look up defaults by spec.plantID", func() {
			pf := makePlantFinance("north-unit-2")
			pf.Spec.PlantID = "north"
			pf.Spec.MachineRating = nil

			params, err := reconciler.resolveParameters(pf)
			Expect(err).NotTo(HaveOccurred())
			Expect(params.MachineRating).To(Equal(5.0))
		})

		It("should derive the fixed charge rate from manifest financing", func() {
			pf := makePlantFinance("north")
			pf.Spec.Financing = &financev1alpha1.Financing{DiscountRate: 0.07, ProjectLifetime: 20}

			params, err := reconciler.resolveParameters(pf)
			Expect(err).NotTo(HaveOccurred())
			want, err := finance.CapitalRecoveryFactor(0.07, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(params.FixedChargeRate).To(BeNumerically("~", want, 1e-15))
		})

		It("should fall back to the built-in fixed charge rate", func() {
			reconciler.Defaults = nil
			params, err := reconciler.resolveParameters(makePlantFinance("north"))
			Expect(err).NotTo(HaveOccurred())
			Expect(params.FixedChargeRate).To(Equal(finance.DefaultFixedChargeRate))
		})
	})

	Context("with a fatal configuration", func() {
		It("should set Evaluated=False with InvalidConfiguration and return the error", func() {
			pf := makePlantFinance("broken")
			pf.Spec.TurbineNumber = 0
			pf.Status.LCOE = 42

			err := reconciler.Reconcile(ctx, pf)
			Expect(err).To(MatchError(finance.ErrTurbineCountNotInitialized))
			Expect(finance.IsConfigurationError(err)).To(BeTrue())

			cond := meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeEvaluated)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(metav1.ConditionFalse))
			Expect(cond.Reason).To(Equal(financev1alpha1.ReasonInvalidConfiguration))
			Expect(pf.Status.LCOE).To(BeZero())
			Expect(meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeInputsComplete)).To(BeNil())

			Expect(evaluationCount(registry, metrics.ResultConfigurationError)).To(Equal(1.0))
		})

		It("should reject invalid financing parameters", func() {
			pf := makePlantFinance("north")
			pf.Spec.Financing = &financev1alpha1.Financing{DiscountRate: 0.07, ProjectLifetime: 0}

			err := reconciler.Reconcile(ctx, pf)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("spec.financing"))
			cond := meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeEvaluated)
			Expect(cond.Reason).To(Equal(financev1alpha1.ReasonInvalidConfiguration))
		})

		It("should recover once the input is fixed", func() {
			pf := makePlantFinance("north")
			pf.Spec.MachineRating = nil
			Expect(reconciler.Reconcile(ctx, pf)).To(MatchError(finance.ErrMachineRatingNotInitialized))

			pf.Spec.MachineRating = ptr.To(5.0)
			Expect(reconciler.Reconcile(ctx, pf)).To(Succeed())
			Expect(meta.IsStatusConditionTrue(pf.Status.Conditions, financev1alpha1.TypeEvaluated)).To(BeTrue())
		})
	})

	Context("with a list", func() {
		It("should evaluate every item and join the failures", func() {
			list := &financev1alpha1.PlantFinanceList{}
			for i := 0; i < 6; i++ {
				pf := makePlantFinance(fmt.Sprintf("plant-%d", i))
				pf.Spec.TurbineNumber = 10 * (i + 1)
				if i == 4 {
					pf.Spec.TurbineCost = 0
				}
				list.Items = append(list.Items, *pf)
			}

			err := reconciler.ReconcileList(ctx, list)
			Expect(err).To(MatchError(finance.ErrTurbineCostNotInitialized))
			Expect(err.Error()).To(ContainSubstring("plant-4"))

			for i, item := range list.Items {
				if i == 4 {
					Expect(meta.IsStatusConditionFalse(item.Status.Conditions, financev1alpha1.TypeEvaluated)).To(BeTrue())
					continue
				}
				Expect(item.Status.LCOE).To(BeNumerically(">", 0), "item %d", i)
				Expect(item.Status.NetParkRating).To(BeNumerically("~", float64(10*(i+1))*5, 1e-9))
			}
		})

		It("should stop on a cancelled context", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			list := &financev1alpha1.PlantFinanceList{Items: []financev1alpha1.PlantFinance{*makePlantFinance("a")}}
			Expect(reconciler.ReconcileList(cctx, list)).To(MatchError(context.Canceled))
			Expect(list.Items[0].Status.Conditions).To(BeEmpty())
		})

		It("should succeed on an empty list", func() {
			Expect(reconciler.ReconcileList(ctx, &financev1alpha1.PlantFinanceList{})).To(Succeed())
		})
	})
})
