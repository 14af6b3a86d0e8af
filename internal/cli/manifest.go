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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"

	financev1alpha1 "github.com/windplant/plantfinance/api/v1alpha1"
)

const (
	kindPlantFinance     = "PlantFinance"
	kindPlantFinanceList = "PlantFinanceList"
)

// readManifests reads every PlantFinance in the given files. A file may hold
// several YAML documents; each is a PlantFinance or a PlantFinanceList.
func readManifests(paths []string) ([]financev1alpha1.PlantFinance, error) {
	var items []financev1alpha1.PlantFinance
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest: %w", err)
		}
		decoded, err := decodeManifests(raw)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func decodeManifests(raw []byte) ([]financev1alpha1.PlantFinance, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(raw)))

	var items []financev1alpha1.PlantFinance
	for doc := 1; ; doc++ {
		data, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}

		var tm metav1.TypeMeta
		if err := yaml.Unmarshal(data, &tm); err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if tm.APIVersion != financev1alpha1.GroupVersion.String() {
			return nil, fmt.Errorf("document %d: unsupported apiVersion %q, want %s",
				doc, tm.APIVersion, financev1alpha1.GroupVersion)
		}

		switch tm.Kind {
		case kindPlantFinance:
			var pf financev1alpha1.PlantFinance
			if err := yaml.UnmarshalStrict(data, &pf); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			items = append(items, pf)
		case kindPlantFinanceList:
			var list financev1alpha1.PlantFinanceList
			if err := yaml.UnmarshalStrict(data, &list); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			items = append(items, list.Items...)
		default:
			return nil, fmt.Errorf("document %d: unsupported kind %q", doc, tm.Kind)
		}
	}
}
