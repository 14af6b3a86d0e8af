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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PlantFinanceSpec holds the financial and energy inputs of a wind plant.
// Monetary values are in USD, energy in kWh and power in MW.
type PlantFinanceSpec struct {
	// PlantID selects the per-plant entry of the finance defaults.
	// Defaults to metadata.name.
	// +optional
	PlantID string `json:"plantID,omitempty"`

	// TurbineCost is the capital cost of a single turbine.
	// +kubebuilder:validation:Minimum=0
	TurbineCost float64 `json:"turbineCost"`

	// TurbineNumber is the number of turbines in the plant.
	// +kubebuilder:validation:Minimum=0
	TurbineNumber int `json:"turbineNumber"`

	// TurbineBOSCosts is the balance-of-station cost per turbine.
	// A missing value is evaluated as zero with a warning.
	// +optional
	TurbineBOSCosts float64 `json:"turbineBOSCosts,omitempty"`

	// TurbineAvgAnnualOpex is the average annual operating expense per turbine.
	// A missing value is evaluated as zero with a warning.
	// +optional
	TurbineAvgAnnualOpex float64 `json:"turbineAvgAnnualOpex,omitempty"`

	// ParkAEP is the net annual energy production of the whole plant.
	// When set it takes precedence over TurbineAEP.
	// +optional
	ParkAEP float64 `json:"parkAEP,omitempty"`

	// TurbineAEP is the annual energy production of a single turbine
	// before wake losses. Used only when ParkAEP is not set.
	// +optional
	TurbineAEP float64 `json:"turbineAEP,omitempty"`

	// WakeLossFactor is the fraction of the turbine AEP lost to wakes.
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=1
	// +kubebuilder:validation:ExclusiveMaximum=true
	// +optional
	WakeLossFactor *float64 `json:"wakeLossFactor,omitempty"`

	// MachineRating is the rated power of a single turbine.
	// +optional
	MachineRating *float64 `json:"machineRating,omitempty"`

	// FixedChargeRate is the annualized capital recovery fraction.
	// Takes precedence over Financing.
	// +optional
	FixedChargeRate *float64 `json:"fixedChargeRate,omitempty"`

	// Financing derives the fixed charge rate as a capital recovery factor.
	// +optional
	Financing *Financing `json:"financing,omitempty"`
}

// Financing holds the parameters of a capital recovery factor.
type Financing struct {
	// DiscountRate is the annual project discount rate.
	DiscountRate float64 `json:"discountRate"`

	// ProjectLifetime is the economic lifetime of the plant in years.
	// +kubebuilder:validation:ExclusiveMinimum=true
	// +kubebuilder:validation:Minimum=0
	ProjectLifetime float64 `json:"projectLifetime"`
}

// PlantWarning is a non-fatal data-quality finding of the last evaluation.
type PlantWarning struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

// PlantFinanceStatus holds the result of the last evaluation.
type PlantFinanceStatus struct {
	// LCOE is the levelized cost of energy in USD/kWh.
	// +optional
	LCOE float64 `json:"lcoe,omitempty"`

	// ParkAEP is the plant AEP used by the evaluation (kWh/yr).
	// +optional
	ParkAEP float64 `json:"parkAEP,omitempty"`

	// AEPSource is "direct" when ParkAEP was supplied and "derived" when it
	// was computed from the turbine AEP.
	// +optional
	AEPSource string `json:"aepSource,omitempty"`

	// NetParkRating is the installed capacity (MW).
	// +optional
	NetParkRating float64 `json:"netParkRating,omitempty"`

	// NetEnergyCapture is the AEP per installed kW (kWh/kW/yr).
	// +optional
	NetEnergyCapture float64 `json:"netEnergyCapture,omitempty"`

	// InitialCapitalCost is the capital cost per installed kW (USD/kW).
	// +optional
	InitialCapitalCost float64 `json:"initialCapitalCost,omitempty"`

	// OperatingCost is the annual opex per installed kW (USD/kW/yr).
	// +optional
	OperatingCost float64 `json:"operatingCost,omitempty"`

	// FixedChargeRate is the rate the evaluation actually used.
	// +optional
	FixedChargeRate float64 `json:"fixedChargeRate,omitempty"`

	// Jacobian maps each input name to d(lcoe)/d(input).
	// +optional
	Jacobian map[string]float64 `json:"jacobian,omitempty"`

	// Warnings lists the data-quality warnings of the last evaluation.
	// +optional
	Warnings []PlantWarning `json:"warnings,omitempty"`

	// LastEvaluationTime is the timestamp of the last evaluation attempt.
	// +optional
	LastEvaluationTime metav1.Time `json:"lastEvaluationTime,omitempty"`

	// Conditions represent the latest available observations of the PlantFinance's state
	// +optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=pf
// +kubebuilder:printcolumn:name="Turbines",type=integer,JSONPath=".spec.turbineNumber"
// +kubebuilder:printcolumn:name="LCOE",type=number,JSONPath=".status.lcoe"
// +kubebuilder:printcolumn:name="Evaluated",type=string,JSONPath=".status.conditions[?(@.type=='Evaluated')].status"
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=".metadata.creationTimestamp"

// PlantFinance is the Schema for the plantfinances API.
// It describes the finance inputs of a wind plant and the evaluated LCOE.
type PlantFinance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PlantFinanceSpec   `json:"spec,omitempty"`
	Status PlantFinanceStatus `json:"status,omitempty"`
}

// PlantFinanceList contains a list of PlantFinance resources.
// +kubebuilder:object:root=true
type PlantFinanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []PlantFinance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PlantFinance{}, &PlantFinanceList{})
}

// EffectivePlantID returns Spec.PlantID, falling back to the object name.
func (p *PlantFinance) EffectivePlantID() string {
	if p.Spec.PlantID != "" {
		return p.Spec.PlantID
	}
	return p.Name
}

// Condition Types for PlantFinance
const (
	// TypeEvaluated indicates whether the last evaluation produced an LCOE
	TypeEvaluated = "Evaluated"
	// TypeInputsComplete indicates whether the evaluation ran without data-quality warnings
	TypeInputsComplete = "InputsComplete"
)

// Condition Reasons for Evaluated
const (
	// ReasonEvaluationSucceeded indicates the LCOE and its Jacobian were computed
	ReasonEvaluationSucceeded = "EvaluationSucceeded"
	// ReasonInvalidConfiguration indicates a required input is missing; retrying will not help
	ReasonInvalidConfiguration = "InvalidConfiguration"
	// ReasonEvaluationFailed indicates a collaborator or defaults lookup failed
	ReasonEvaluationFailed = "EvaluationFailed"
)

// Condition Reasons for InputsComplete
const (
	// ReasonInputsComplete indicates no data-quality warnings were raised
	ReasonInputsComplete = "InputsComplete"
	// ReasonDataQualityWarning indicates at least one input was defaulted or out of range
	ReasonDataQualityWarning = "DataQualityWarning"
)
