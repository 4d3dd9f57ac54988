package pipeline

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Part is one output section: the input with every Substitute match replaced
// by Replacement, and the Modify value run through Transform.
type Part struct {
	Replacement string `yaml:"replacement"`
	Transform   string `yaml:"transform"`
}

// Config selects what a pass looks for and how it rewrites it.
//
// Modify and Indent must each contain one capture group. Group 1 of Modify is
// the text handed to each part's transform; group 1 of Indent is the indent
// applied to the output.
type Config struct {
	Substitute string `yaml:"substitute"`
	Modify     string `yaml:"modify"`
	Indent     string `yaml:"indent"`
	Parts      []Part `yaml:"parts"`
}

func DefaultConfig() Config {
	return Config{
		Substitute: `\.`,
		Modify:     `Modify: "(.*)"`,
		Indent:     `Indent: "(.*)"`,
		Parts: []Part{
			{Replacement: "??", Transform: "reverse"},
			{Replacement: "!!", Transform: "strip-vowels"},
		},
	}
}

// LoadConfig reads a YAML config from path. Fields left out keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.Compile(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type compiledPart struct {
	replacement string
	name        string
	transform   Transform
}

// Compiled is a validated Config ready to run.
type Compiled struct {
	substitute *regexp.Regexp
	modify     *regexp.Regexp
	indent     *regexp.Regexp
	parts      []compiledPart
}

// Compile validates c and compiles its patterns.
func (c Config) Compile() (*Compiled, error) {
	if len(c.Parts) == 0 {
		return nil, ErrNoParts
	}
	out := &Compiled{}
	var err error
	if out.substitute, err = compilePattern("substitute", c.Substitute, 0); err != nil {
		return nil, err
	}
	if out.modify, err = compilePattern("modify", c.Modify, 1); err != nil {
		return nil, err
	}
	if out.indent, err = compilePattern("indent", c.Indent, 1); err != nil {
		return nil, err
	}
	for _, p := range c.Parts {
		f, ok := LookupTransform(p.Transform)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, p.Transform)
		}
		out.parts = append(out.parts, compiledPart{replacement: p.Replacement, name: p.Transform, transform: f})
	}
	return out, nil
}

func compilePattern(field, pattern string, groups int) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, field, err)
	}
	if re.NumSubexp() < groups {
		return nil, fmt.Errorf("%w: %s: needs %d capture group(s)", ErrInvalidPattern, field, groups)
	}
	return re, nil
}
