// ABOUTME: Loads reference data from YAML files.
// ABOUTME: Loaded pools and sets replace the built-in ones of the same name.

package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML reference data file.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read reference data: %w", err)
	}
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parse reference data %s: %w", path, err)
	}
	for pool, entities := range d.Pools {
		for i, e := range entities {
			if e.ID == "" {
				return Data{}, fmt.Errorf("reference data %s: %s[%d] has no id", path, pool, i)
			}
		}
	}
	return d, nil
}

// Open returns a Store over the built-in data, with the pools and sets of
// path layered on top when path is non-empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(DefaultData().Merge(d)), nil
}
