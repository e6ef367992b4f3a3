package engine

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// FileOptions holds the scalar knobs of Options that can be expressed in a
// config file; the algorithmic fields (selectors, alterers, problem) are
// always wired in code. Two on-disk formats are supported: a structured
// YAML document and a legacy "name value" plain-text format.
type FileOptions struct {
	PopulationSize    int     `yaml:"population_size"`
	MaxAge            int     `yaml:"max_age"`
	OffspringFraction float64 `yaml:"offspring_fraction"`
	FrontMinSize      int     `yaml:"front_min_size"`
	FrontMaxSize      int     `yaml:"front_max_size"`
	SpeciesThreshold  float64 `yaml:"species_threshold"`
	MaxSpeciesAge     int     `yaml:"max_species_age"`
	RandomSeed        int64   `yaml:"random_seed"`
}

// LoadYAMLOptions reads a FileOptions document from r.
func LoadYAMLOptions(r io.Reader) (*FileOptions, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var fo FileOptions
	if err := yaml.Unmarshal(content, &fo); err != nil {
		return nil, errors.Wrap(err, "failed to decode engine options from YAML")
	}
	return &fo, nil
}

// LoadLegacyOptions reads the "name value\n" plain-text format, tolerant
// of values needing type coercion (ints/floats written without a fixed
// format).
func LoadLegacyOptions(r io.Reader) (*FileOptions, error) {
	fo := &FileOptions{}
	var name string
	var param string
	for {
		n, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF || n == 0 {
			break
		} else if err != nil {
			return nil, err
		}
		switch name {
		case "population_size":
			fo.PopulationSize = cast.ToInt(param)
		case "max_age":
			fo.MaxAge = cast.ToInt(param)
		case "offspring_fraction":
			fo.OffspringFraction = cast.ToFloat64(param)
		case "front_min_size":
			fo.FrontMinSize = cast.ToInt(param)
		case "front_max_size":
			fo.FrontMaxSize = cast.ToInt(param)
		case "species_threshold":
			fo.SpeciesThreshold = cast.ToFloat64(param)
		case "max_species_age":
			fo.MaxSpeciesAge = cast.ToInt(param)
		case "random_seed":
			fo.RandomSeed = cast.ToInt64(param)
		}
	}
	return fo, nil
}

// ApplyFileOptions merges the file-sourced scalars into o, leaving any
// field o already had explicitly set (non-zero) untouched: code-configured
// values win over file defaults.
func (o *Options[T]) ApplyFileOptions(fo *FileOptions) {
	if o.PopulationSize == 0 {
		o.PopulationSize = fo.PopulationSize
	}
	if o.MaxAge == 0 {
		o.MaxAge = fo.MaxAge
	}
	if o.OffspringFraction == 0 {
		o.OffspringFraction = fo.OffspringFraction
	}
	if o.FrontMinSize == 0 {
		o.FrontMinSize = fo.FrontMinSize
	}
	if o.FrontMaxSize == 0 {
		o.FrontMaxSize = fo.FrontMaxSize
	}
	if o.SpeciesThreshold == 0 {
		o.SpeciesThreshold = fo.SpeciesThreshold
	}
	if o.MaxSpeciesAge == 0 {
		o.MaxSpeciesAge = fo.MaxSpeciesAge
	}
	if fo.RandomSeed != 0 {
		o.RandomSeed = fo.RandomSeed
		o.HasRandomSeed = true
	}
}
