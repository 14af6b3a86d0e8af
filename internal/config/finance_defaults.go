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

package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/windplant/plantfinance/internal/logging"
	"github.com/windplant/plantfinance/pkg/finance"
)

// Finance defaults configuration constants
const (
	// DefaultFinanceDefaultsConfigMapName is the conventional name of the ConfigMap
	// holding global and per-plant finance defaults.
	DefaultFinanceDefaultsConfigMapName = "plant-finance-defaults"

	// GlobalDefaultsKey is the ConfigMap key holding defaults for all plants.
	GlobalDefaultsKey = "default"
)

// PlantFinanceDefaults holds default financial parameters for a plant.
// Unset fields are nil so that overrides can inherit from the global defaults.
type PlantFinanceDefaults struct {
	// PlantID is the plant identifier (only used in override entries)
	PlantID string `yaml:"plant_id,omitempty" json:"plant_id,omitempty"`

	// FixedChargeRate is the annualized capital recovery fraction (0.0-1.0).
	// Takes precedence over DiscountRate/ProjectLifetime.
	FixedChargeRate *float64 `yaml:"fixedChargeRate,omitempty" json:"fixedChargeRate,omitempty"`

	// DiscountRate and ProjectLifetime (years) derive the fixed charge rate
	// as a capital recovery factor when FixedChargeRate is unset.
	DiscountRate    *float64 `yaml:"discountRate,omitempty" json:"discountRate,omitempty"`
	ProjectLifetime *float64 `yaml:"projectLifetime,omitempty" json:"projectLifetime,omitempty"`

	// WakeLossFactor is the fraction of AEP lost to wakes (0.0-1.0).
	WakeLossFactor *float64 `yaml:"wakeLossFactor,omitempty" json:"wakeLossFactor,omitempty"`

	// MachineRating is the turbine rating in MW.
	MachineRating *float64 `yaml:"machineRating,omitempty" json:"machineRating,omitempty"`
}

// FinanceDefaultsData holds parsed defaults for all plants.
// Maps plant ID (or GlobalDefaultsKey) to its defaults.
type FinanceDefaultsData map[string]PlantFinanceDefaults

// Validate checks for invalid configuration values.
func (c *PlantFinanceDefaults) Validate() error {
	if c.FixedChargeRate != nil && (*c.FixedChargeRate <= 0 || *c.FixedChargeRate > 1) {
		return fmt.Errorf("fixedChargeRate must be in (0, 1], got %.4f", *c.FixedChargeRate)
	}
	if c.DiscountRate != nil && (*c.DiscountRate < 0 || *c.DiscountRate >= 1) {
		return fmt.Errorf("discountRate must be in [0, 1), got %.4f", *c.DiscountRate)
	}
	if c.ProjectLifetime != nil && *c.ProjectLifetime <= 0 {
		return fmt.Errorf("projectLifetime must be > 0 years, got %.1f", *c.ProjectLifetime)
	}
	if (c.DiscountRate == nil) != (c.ProjectLifetime == nil) {
		return fmt.Errorf("discountRate and projectLifetime must be set together")
	}
	if c.WakeLossFactor != nil && (*c.WakeLossFactor < 0 || *c.WakeLossFactor >= 1) {
		return fmt.Errorf("wakeLossFactor must be in [0, 1), got %.4f", *c.WakeLossFactor)
	}
	if c.MachineRating != nil && *c.MachineRating <= 0 {
		return fmt.Errorf("machineRating must be > 0 MW, got %.2f", *c.MachineRating)
	}
	return nil
}

// ResolveFixedChargeRate returns the effective fixed charge rate: the explicit
// rate, else the capital recovery factor of the financing parameters, else
// finance.DefaultFixedChargeRate.
func (c PlantFinanceDefaults) ResolveFixedChargeRate() (float64, error) {
	if c.FixedChargeRate != nil {
		return *c.FixedChargeRate, nil
	}
	if c.DiscountRate != nil && c.ProjectLifetime != nil {
		return finance.CapitalRecoveryFactor(*c.DiscountRate, *c.ProjectLifetime)
	}
	return finance.DefaultFixedChargeRate, nil
}

// ParseFinanceDefaultsConfigMap parses finance defaults from a ConfigMap's data.
// The ConfigMap format:
//   - "default": global defaults for all plants
//   - "<override-name>": per-plant defaults with plant_id field
//
// Entries that fail to parse or validate are skipped.
func ParseFinanceDefaultsConfigMap(data map[string]string) FinanceDefaultsData {
	out := make(FinanceDefaultsData)
	if data == nil {
		return out
	}

	plantIDToKey := make(map[string]string)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var defaults PlantFinanceDefaults
		if err := yaml.Unmarshal([]byte(data[key]), &defaults); err != nil {
			ctrl.Log.Info("Failed to parse plant finance defaults entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if err := defaults.Validate(); err != nil {
			ctrl.Log.Info("Invalid plant finance defaults entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if key == GlobalDefaultsKey {
			out[GlobalDefaultsKey] = defaults
			continue
		}

		if defaults.PlantID == "" {
			ctrl.Log.Info("Skipping plant finance defaults without plant_id field",
				"key", key)
			continue
		}

		if winner, exists := plantIDToKey[defaults.PlantID]; exists {
			ctrl.Log.Info("Duplicate plant_id found in plant finance defaults - first key wins",
				"plant_id", defaults.PlantID,
				"winningKey", winner,
				"duplicateKey", key)
			continue
		}
		plantIDToKey[defaults.PlantID] = key
		out[defaults.PlantID] = defaults
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed plant finance defaults",
		"plantCount", len(out))

	return out
}

// LoadFinanceDefaultsFile reads a ConfigMap manifest from path and parses its data.
func LoadFinanceDefaultsFile(path string) (FinanceDefaultsData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read finance defaults %s: %w", path, err)
	}
	var cm corev1.ConfigMap
	if err := sigsyaml.Unmarshal(raw, &cm); err != nil {
		return nil, fmt.Errorf("failed to decode finance defaults ConfigMap %s: %w", path, err)
	}
	if cm.Kind != "" && cm.Kind != "ConfigMap" {
		return nil, fmt.Errorf("finance defaults %s: expected kind ConfigMap, got %q", path, cm.Kind)
	}
	if cm.Name != "" && cm.Name != DefaultFinanceDefaultsConfigMapName {
		ctrl.Log.V(logging.DEBUG).Info("Using non-default finance defaults ConfigMap",
			"name", cm.Name,
			"path", path)
	}
	return ParseFinanceDefaultsConfigMap(cm.Data), nil
}

// GetPlantDefaults returns the effective defaults for a specific plant.
// It merges the plant-specific defaults over the global defaults.
func (data FinanceDefaultsData) GetPlantDefaults(plantID string) PlantFinanceDefaults {
	defaults := data[GlobalDefaultsKey]
	plant, ok := data[plantID]
	if !ok || plantID == GlobalDefaultsKey {
		return defaults
	}

	result := defaults
	result.PlantID = plant.PlantID
	if plant.FixedChargeRate != nil {
		result.FixedChargeRate = ptr.To(*plant.FixedChargeRate)
	}
	// financing parameters travel as a pair and replace an inherited rate
	if plant.DiscountRate != nil {
		result.DiscountRate = ptr.To(*plant.DiscountRate)
		result.ProjectLifetime = ptr.To(*plant.ProjectLifetime)
		if plant.FixedChargeRate == nil {
			result.FixedChargeRate = nil
		}
	}
	if plant.WakeLossFactor != nil {
		result.WakeLossFactor = ptr.To(*plant.WakeLossFactor)
	}
	if plant.MachineRating != nil {
		result.MachineRating = ptr.To(*plant.MachineRating)
	}
	return result
}
