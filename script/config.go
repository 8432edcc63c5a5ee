// Package script loads animation scenes described in YAML.
package script

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/keyframe/player"
)

// Script is the decoded form of a scene file.
type Script struct {
	Playback player.Config `yaml:"playback"`
	Targets  []Target      `yaml:"targets"`
	Entries  []Entry       `yaml:"entries"`
}

// Target declares one animatable object.
type Target struct {
	Name string `yaml:"name"`
	// Kind is one of group, shape, label or palette.
	Kind    string        `yaml:"kind"`
	X       int           `yaml:"x"`
	Y       int           `yaml:"y"`
	Color   interface{}   `yaml:"color"`
	Palette []interface{} `yaml:"palette"`
}

// Entry declares one scheduled animation. Params are specific to Behavior.
type Entry struct {
	Target   string                 `yaml:"target"`
	Start    float64                `yaml:"start"`
	End      float64                `yaml:"end"`
	Behavior string                 `yaml:"behavior"`
	Params   map[string]interface{} `yaml:"params"`
}

// Load reads a scene file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// Decode parses a scene from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Script, error) {
	s := new(Script)
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return s, nil
}
