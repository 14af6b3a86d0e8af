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

package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
	"github.com/windplant/plantfinance/internal/cli"
	"github.com/windplant/plantfinance/pkg/finance"
)

// runCLI executes the plantfinance command tree and returns stdout, stderr and the error.
func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	_, _ = GinkgoWriter.Write(stderr.Bytes())
	return stdout.String(), stderr.String(), err
}

func findPlant(list financev1alpha1.PlantFinanceList, name string) financev1alpha1.PlantFinance {
	for _, item := range list.Items {
		if item.Name == name {
			return item
		}
	}
	Fail("plant " + name + " not found in output")
	return financev1alpha1.PlantFinance{}
}

var _ = Describe("plantfinance evaluate", Ordered, func() {
	var metricsFile string

	BeforeAll(func() {
		metricsFile = filepath.Join(GinkgoT().TempDir(), "plantfinance.prom")
	})

	Context("offshore fleet with finance defaults", func() {
		var list financev1alpha1.PlantFinanceList

		BeforeAll(func() {
			stdout, _, err := runCLI("evaluate", "testdata/offshore-fleet.yaml",
				"--defaults=testdata/defaults.yaml",
				"--output=json",
				"--metrics-textfile="+metricsFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(json.Unmarshal([]byte(stdout), &list)).To(Succeed())
			Expect(list.Items).To(HaveLen(2))
		})

		It("should derive the park AEP and inherit plant and global defaults", func() {
			pf := findPlant(list, "dogger-a")
			crf, err := finance.CapitalRecoveryFactor(0.07, 25)
			Expect(err).NotTo(HaveOccurred())

			park := 95 * 45e6 * (1 - 0.12)
			nec := park / (95 * 15 * 1000)
			icc := (9e6 + 7.5e6) / (15 * 1000)
			opex := 4e5 / (15 * 1000)

			Expect(pf.Status.AEPSource).To(Equal(string(finance.AEPSourceDerived)))
			Expect(pf.Status.FixedChargeRate).To(BeNumerically("~", crf, 1e-15))
			Expect(pf.Status.ParkAEP).To(BeNumerically("~", park, 1e-3))
			Expect(pf.Status.LCOE).To(BeNumerically("~", (icc*crf+opex)/nec, 1e-12))
			Expect(pf.Status.Jacobian["turbine_number"]).To(BeNumerically("~", 0, 1e-15))
			Expect(pf.Status.Jacobian["park_aep"]).To(BeZero())
			Expect(meta.IsStatusConditionTrue(pf.Status.Conditions, financev1alpha1.TypeInputsComplete)).To(BeTrue())
		})

		It("should let the manifest fixed charge rate win over the defaults", func() {
			pf := findPlant(list, "dogger-b")
			Expect(pf.Status.FixedChargeRate).To(Equal(0.09))
			Expect(pf.Status.AEPSource).To(Equal(string(finance.AEPSourceDirect)))
			Expect(pf.Status.Jacobian["park_aep"]).To(BeNumerically("~", -pf.Status.LCOE/3.6e9, 1e-20))
			Expect(pf.Status.Jacobian["turbine_number"]).To(BeNumerically("~", pf.Status.LCOE/95, 1e-15))
		})

		It("should write the metrics textfile", func() {
			raw, err := os.ReadFile(metricsFile)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(ContainSubstring(`plantfinance_evaluations_total{result="success"} 2`))
			Expect(string(raw)).To(ContainSubstring(`plantfinance_lcoe_usd_per_kwh{plant="dogger"}`))
		})
	})

	Context("onshore manifests with a draft plant", func() {
		var (
			list   financev1alpha1.PlantFinanceList
			runErr error
		)

		BeforeAll(func() {
			var stdout string
			stdout, _, runErr = runCLI("evaluate", "testdata/onshore.yaml")
			Expect(yaml.Unmarshal([]byte(stdout), &list)).To(Succeed())
			Expect(list.Items).To(HaveLen(2))
		})

		It("should exit with the configuration error of the draft", func() {
			Expect(runErr).To(MatchError(finance.ErrTurbineCostNotInitialized))
			Expect(finance.IsConfigurationError(runErr)).To(BeTrue())
		})

		It("should mark the draft as invalid", func() {
			pf := findPlant(list, "prairie-draft")
			cond := meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeEvaluated)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(metav1.ConditionFalse))
			Expect(cond.Reason).To(Equal(financev1alpha1.ReasonInvalidConfiguration))
			Expect(cond.Message).To(ContainSubstring("turbine cost not initialized"))
		})

		It("should evaluate the complete plant with a data-quality warning", func() {
			pf := findPlant(list, "prairie")
			Expect(pf.Status.LCOE).To(BeNumerically(">", 0))
			Expect(pf.Status.FixedChargeRate).To(Equal(finance.DefaultFixedChargeRate))
			Expect(pf.Status.Warnings).To(HaveLen(1))
			Expect(pf.Status.Warnings[0].Kind).To(Equal(string(finance.WarningOpexMissing)))
			cond := meta.FindStatusCondition(pf.Status.Conditions, financev1alpha1.TypeInputsComplete)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Reason).To(Equal(financev1alpha1.ReasonDataQualityWarning))
		})
	})

	Context("capital recovery factor", func() {
		It("should print the factor used for the offshore defaults", func() {
			stdout, _, err := runCLI("crf", "--rate=0.07", "--years=25")
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout).To(Equal("0.085811\n"))
		})
	})
})
