package registry

import (
	_ "embed"
	"strconv"
	"strings"
	"sync"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Well-known bundle keys
const (
	KeyMinimal  = "minimal"
	KeyStandard = "standard"
	KeyComplete = "complete"
)

//go:embed catalog.yaml
var catalogData []byte

// Rule describes a single rule file.
type Rule struct {
	Filename    string
	Category    string
	Description string
}

// Bundle is a named, ordered subset of rule filenames.
type Bundle struct {
	Key         string
	Name        string
	Description string
	files       []string
}

// Files returns a copy of the bundle's filenames in catalog order.
func (b Bundle) Files() []string {
	out := make([]string, len(b.files))
	copy(out, b.files)
	return out
}

// Count is the number of files in the bundle.
func (b Bundle) Count() int {
	return len(b.files)
}

// Category groups rules for display.
type Category struct {
	Name  string
	Rules []Rule
}

// Registry is an immutable catalog of rules and bundles.
type Registry struct {
	rules   []Rule
	byFile  map[string]int
	bundles []Bundle
	byKey   map[string]int
}

type catalogDTO struct {
	Rules []struct {
		File        string `yaml:"file"`
		Category    string `yaml:"category"`
		Description string `yaml:"description"`
	} `yaml:"rules"`
	Bundles []struct {
		Key         string   `yaml:"key"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Files       []string `yaml:"files"`
	} `yaml:"bundles"`
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return New(catalogData)
})

// Default returns the registry built from the embedded catalog. It is
// decoded on first use and shared afterwards.
func Default() (*Registry, error) {
	return loadDefault()
}

// New decodes and validates a YAML catalog.
func New(data []byte) (*Registry, error) {
	var dto catalogDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, errors.Wrap(err, errors.ErrRegistryInvalid, "failed to parse rule catalog")
	}

	r := &Registry{
		byFile: make(map[string]int, len(dto.Rules)),
		byKey:  make(map[string]int, len(dto.Bundles)),
	}

	for _, rd := range dto.Rules {
		name := strings.TrimSpace(rd.File)
		if name == "" {
			return nil, errors.New(errors.ErrRegistryInvalid, "rule with empty filename")
		}
		if _, dup := r.byFile[name]; dup {
			return nil, errors.Newf(errors.ErrRegistryInvalid, "duplicate rule %q", name).
				WithDetail("rule", name)
		}
		r.byFile[name] = len(r.rules)
		r.rules = append(r.rules, Rule{
			Filename:    name,
			Category:    rd.Category,
			Description: rd.Description,
		})
	}

	if len(dto.Bundles) == 0 {
		return nil, errors.New(errors.ErrRegistryInvalid, "catalog defines no bundles")
	}

	for _, bd := range dto.Bundles {
		key := strings.TrimSpace(bd.Key)
		if key == "" {
			return nil, errors.New(errors.ErrRegistryInvalid, "bundle with empty key")
		}
		if _, dup := r.byKey[key]; dup {
			return nil, errors.Newf(errors.ErrRegistryInvalid, "duplicate bundle %q", key).
				WithDetail("bundle", key)
		}
		if len(bd.Files) == 0 {
			return nil, errors.Newf(errors.ErrRegistryInvalid, "bundle %q has no files", key).
				WithDetail("bundle", key)
		}
		for _, f := range bd.Files {
			if _, ok := r.byFile[f]; !ok {
				return nil, errors.Newf(errors.ErrRegistryInvalid, "bundle %q references unknown rule %q", key, f).
					WithDetail("bundle", key).
					WithDetail("rule", f)
			}
		}

		files := make([]string, len(bd.Files))
		copy(files, bd.Files)
		r.byKey[key] = len(r.bundles)
		r.bundles = append(r.bundles, Bundle{
			Key:         key,
			Name:        bd.Name,
			Description: bd.Description,
			files:       files,
		})
	}

	return r, nil
}

// Resolve looks a bundle up by key.
func (r *Registry) Resolve(key string) (Bundle, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Bundle{}, false
	}
	return r.bundles[i], true
}

// ResolveByOrdinal looks a bundle up by its 1-based position.
func (r *Registry) ResolveByOrdinal(n int) (Bundle, bool) {
	if n < 1 || n > len(r.bundles) {
		return Bundle{}, false
	}
	return r.bundles[n-1], true
}

// ParseOrdinal resolves user input such as "2" to a bundle. Anything that
// is not a decimal integer in range reports false.
func (r *Registry) ParseOrdinal(s string) (Bundle, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Bundle{}, false
	}
	return r.ResolveByOrdinal(n)
}

// DescribeRule returns the rule's description, or "" for unknown files.
func (r *Registry) DescribeRule(filename string) string {
	rule, ok := r.Rule(filename)
	if !ok {
		return ""
	}
	return rule.Description
}

// Rule looks a rule up by filename.
func (r *Registry) Rule(filename string) (Rule, bool) {
	i, ok := r.byFile[filename]
	if !ok {
		return Rule{}, false
	}
	return r.rules[i], true
}

// Bundles returns every bundle in ordinal order.
func (r *Registry) Bundles() []Bundle {
	out := make([]Bundle, len(r.bundles))
	copy(out, r.bundles)
	return out
}

// Keys returns bundle keys in ordinal order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.bundles))
	for i, b := range r.bundles {
		keys[i] = b.Key
	}
	return keys
}

// Rules returns every rule in catalog order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Categories groups rules by category, in order of first appearance.
func (r *Registry) Categories() []Category {
	var cats []Category
	index := make(map[string]int)
	for _, rule := range r.rules {
		i, ok := index[rule.Category]
		if !ok {
			i = len(cats)
			index[rule.Category] = i
			cats = append(cats, Category{Name: rule.Category})
		}
		cats[i].Rules = append(cats[i].Rules, rule)
	}
	return cats
}
