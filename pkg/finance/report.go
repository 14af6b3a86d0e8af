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
	"bytes"
	"fmt"
	"io"
)

const diagnosticsRule = "################################################"

// WriteDiagnostics writes a human-readable summary of an evaluation: every
// input, the intermediates and the LCOE, in engineering units. The report is
// emitted with a single Write call.
func WriteDiagnostics(w io.Writer, in Inputs, res *Result) error {
	var b bytes.Buffer
	line := func(label, format string, args ...any) {
		fmt.Fprintf(&b, "%-34s %s\n", label, fmt.Sprintf(format, args...))
	}

	b.WriteString(diagnosticsRule + "\n")
	b.WriteString("Computation of LCOE from plant finance\n")
	b.WriteString("Inputs:\n")
	line("Number of turbines in the park", "%d", in.TurbineNumber)
	line("Rating of the single turbine", "%.2f MW", in.MachineRating)
	line("Cost of the single turbine", "%.3f M USD", in.TurbineCost*1e-6)
	line("BoS costs of the single turbine", "%.3f M USD", in.TurbineBOSCosts*1e-6)
	line("Opex costs of the single turbine", "%.3f M USD/yr", in.TurbineAvgAnnualOpex*1e-6)
	line("Fixed charge rate", "%.2f %%", in.FixedChargeRate*100)
	line("Wake loss factor", "%.2f %%", in.WakeLossFactor*100)
	line("AEP of the single turbine", "%.3f GWh", in.TurbineAEP*1e-6)
	line("AEP of the wind plant", "%.3f GWh (%s)", res.ParkAEP*1e-6, res.AEPSource)
	b.WriteString("Intermediates:\n")
	line("Net park rating", "%.2f MW", res.NetParkRating)
	line("Initial capital cost", "%.2f USD/kW", res.InitialCapitalCost)
	line("Operating cost", "%.2f USD/kW/yr", res.OperatingCost)
	line("Net energy capture", "%.2f MWh/MW/yr", res.NetEnergyCapture)
	b.WriteString("Outputs:\n")
	line("LCOE", "%.3f USD/MWh", res.LCOE*kWPerMW)
	for _, warn := range res.Warnings {
		line("Warning", "%s", warn)
	}
	b.WriteString(diagnosticsRule + "\n")

	_, err := w.Write(b.Bytes())
	return err
}
