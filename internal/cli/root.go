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

// Package cli implements the plantfinance command line.
package cli

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/windplant/plantfinance/internal/config"
	"github.com/windplant/plantfinance/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger logr.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the plantfinance command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "plantfinance",
		Short: "Levelized cost of energy of wind plants, with analytic sensitivities",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.Setup(logging.Options{
				Verbosity:   cfg.LogLevel,
				Development: cfg.Development,
				Output:      stderr,
			})
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	config.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(a.evaluateCmd())
	rootCmd.AddCommand(a.crfCmd())
	return rootCmd
}
