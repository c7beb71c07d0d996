package projection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML layout of a projection catalog override.
type catalogFile struct {
	Conversions []Conversion `yaml:"conversions"`
}

// LoadCatalog reads a projection catalog from a YAML file. Every conversion
// is validated against the supported method and parameter sets, so an
// override can reorder or trim the catalog but never introduce an
// arbitrary user-supplied projection.
func LoadCatalog(path string) ([]Conversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(cf.Conversions) == 0 {
		return nil, fmt.Errorf("catalog %s: no conversions", path)
	}
	for _, c := range cf.Conversions {
		if _, err := MethodByName(c.Method); err != nil {
			return nil, fmt.Errorf("catalog %s: conversion %d (%s): %w", path, c.ID, c.Name, err)
		}
		for _, p := range c.Parameters {
			if _, _, err := ParamInfo(p.Name); err != nil {
				return nil, fmt.Errorf("catalog %s: conversion %d (%s): %w", path, c.ID, c.Name, err)
			}
		}
		if c.Kind < KindSphere || c.Kind > KindTriaxialOcentric {
			return nil, fmt.Errorf("catalog %s: conversion %d (%s): invalid datum kind %d", path, c.ID, c.Name, int(c.Kind))
		}
	}
	return cf.Conversions, nil
}
