// Package config loads the optional .mapstitch.yaml defaults file from
// an input directory. Values it carries sit between the built-in
// defaults and explicit command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aoiumi/mapstitch/pkg/merge"
)

// FileName is the defaults file looked up inside the input directory.
const FileName = ".mapstitch.yaml"

// File mirrors the yaml defaults file. Pointer fields distinguish "not
// set" from an explicit zero.
type File struct {
	OutputOsu   string   `yaml:"output_osu"`
	OutputAudio string   `yaml:"output_audio"`
	Backend     string   `yaml:"backend"`
	HP          *float64 `yaml:"hp"`
	OD          *float64 `yaml:"od"`
	CS          *float64 `yaml:"cs"`
	AR          *float64 `yaml:"ar"`
}

// Load reads dir's defaults file. A missing file is not an error; the
// returned *File is nil in that case.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// ApplyTo copies every set value onto spec. Calling it on a nil File is
// a no-op.
func (f *File) ApplyTo(spec *merge.Spec) {
	if f == nil {
		return
	}
	if f.OutputOsu != "" {
		spec.OutputOsu = f.OutputOsu
	}
	if f.OutputAudio != "" {
		spec.OutputAudio = f.OutputAudio
	}
	if f.Backend != "" {
		spec.Backend = f.Backend
	}
	if f.HP != nil {
		spec.Difficulty.HP = *f.HP
	}
	if f.OD != nil {
		spec.Difficulty.OD = *f.OD
	}
	if f.CS != nil {
		spec.Difficulty.CS = *f.CS
	}
	if f.AR != nil {
		spec.Difficulty.AR = *f.AR
	}
}
