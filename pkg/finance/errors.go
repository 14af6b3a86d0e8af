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
	"errors"
	"fmt"
)

// Fatal configuration errors. An evaluation failing with one of these cannot
// succeed with the same inputs and must not be retried.
var (
	ErrTurbineCountNotInitialized  = errors.New("turbine count not initialized")
	ErrTurbineCostNotInitialized   = errors.New("turbine cost not initialized")
	ErrAEPNotConnected             = errors.New("AEP not connected")
	ErrMachineRatingNotInitialized = errors.New("machine rating not initialized")
	ErrNonPositiveAEP              = errors.New("plant AEP is not positive")
)

// ConfigurationError reports a structurally missing input.
type ConfigurationError struct {
	// Err is one of the Err* sentinels.
	Err error
	// Detail describes the offending values.
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s; check the connections to the plant finance inputs", e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is a fatal configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func configurationError(sentinel error, format string, args ...any) error {
	return &ConfigurationError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}
