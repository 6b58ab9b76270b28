package harness

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sample is one evaluation input: a Japanese reading passage.
type Sample struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Dataset is a named collection of samples.
type Dataset struct {
	Name    string   `yaml:"name"`
	Samples []Sample `yaml:"samples"`
}

// LoadDataset reads a dataset from a YAML file and validates it.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	if ds.Name == "" {
		ds.Name = path
	}
	if err := ds.validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

// BuiltinDataset returns the default evaluation dataset, usable without
// any dataset file.
func BuiltinDataset() *Dataset {
	return &Dataset{
		Name: "builtin",
		Samples: []Sample{
			{
				ID:   "park-walk",
				Text: "今日は天気が良いので、公園で散歩をしました。桜の花がとてもきれいでした。",
			},
			{
				ID:   "morning-jog",
				Text: "彼女は毎朝6時に起きて、ジョギングをする習慣があります。健康を保つために大切だと考えているからです。",
			},
		},
	}
}

func (ds *Dataset) validate() error {
	if len(ds.Samples) == 0 {
		return fmt.Errorf("no samples")
	}

	seen := make(map[string]bool, len(ds.Samples))
	for i := range ds.Samples {
		s := &ds.Samples[i]
		if s.ID == "" {
			s.ID = fmt.Sprintf("sample-%d", i+1)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate sample id %q", s.ID)
		}
		seen[s.ID] = true
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("sample %q has empty text", s.ID)
		}
	}
	return nil
}
