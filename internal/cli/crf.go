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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/windplant/plantfinance/pkg/finance"
)

func (a *app) crfCmd() *cobra.Command {
	var rate, years float64

	cmd := &cobra.Command{
		Use:   "crf",
		Short: "Print the capital recovery factor of a discount rate and project lifetime",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			crf, err := finance.CapitalRecoveryFactor(rate, years)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%.6f\n", crf)
			return err
		},
	}

	cmd.Flags().Float64VarP(&rate, "rate", "r", 0.07, "annual discount rate")
	cmd.Flags().Float64VarP(&years, "years", "n", 20, "project lifetime in years")
	return cmd
}
