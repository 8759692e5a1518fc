// Package scaletable provides a [money.ScaleLookup] configured from a YAML or
// JSON document, for units that are not defined by ISO 4217:
//
//	currencies:
//	  XAU:
//	    units:
//	      gram: "311034768/10000000"
//	      minor: null
//	  BTC:
//	    units:
//	      satoshi: "100000000"
//	      millibitcoin: "1000"
//
// Scales are written as positive integers or fractions. A null scale declares
// that the unit deliberately has no canonical scale, which hides any scale
// that [money.ISO] knows for it. Units missing from the document are looked
// up in [money.ISO].
package scaletable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	money "github.com/chris-martin/safe-money"
)

// Format is the syntax of a scale table document.
type Format uint8

const (
	YAML Format = iota
	JSON
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

var (
	errUnknownFormat = errors.New("unknown format")
	errInvalidScale  = errors.New("invalid scale")
	errEmptyName     = errors.New("empty name")
	errDuplicateUnit = errors.New("duplicate unit")
)

// scaleRe is the grammar of a scale: an integer or a fraction of integers.
// The sign is admitted so that negative scales report ErrNonPositiveScale.
var scaleRe = regexp.MustCompile(`^-?[0-9]+(/[0-9]+)?$`)

type document struct {
	Currencies map[string]currencyEntry `yaml:"currencies" json:"currencies"`
}

type currencyEntry struct {
	Units map[string]*string `yaml:"units" json:"units"`
}

type key struct {
	curr, unit string
}

func newKey(curr, unit string) key {
	return key{curr: strings.ToUpper(curr), unit: strings.ToLower(unit)}
}

// Table maps currency units to scales.
// Currency codes and unit names are case-insensitive.
// A Table is read-only after loading and safe for concurrent use.
type Table struct {
	scales map[key]money.Scale
	absent map[key]struct{}
}

// Load reads a table document in format f from r.
//
// Load returns an error if the document cannot be decoded, if a scale
// is not a positive rational number, or if a unit is listed twice, counting
// differently cased spellings of a currency or unit as the same.
func Load(r io.Reader, f Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loading scale table: %w", err)
	}
	var doc document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loading %v scale table: %w", f, err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("loading %v scale table: %w", f, err)
		}
	default:
		return nil, fmt.Errorf("loading scale table: %w %v", errUnknownFormat, f)
	}
	t, err := fromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("loading %v scale table: %w", f, err)
	}
	return t, nil
}

// LoadFile reads a table document from the named file.
// The format is chosen by the extension: ".yaml" and ".yml" for YAML,
// ".json" for JSON.
func LoadFile(path string) (*Table, error) {
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = YAML
	case ".json":
		f = JSON
	default:
		return nil, fmt.Errorf("loading scale table %v: %w", path, errUnknownFormat)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading scale table: %w", err)
	}
	defer file.Close()
	t, err := Load(file, f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return t, nil
}

func fromDocument(doc document) (*Table, error) {
	t := &Table{
		scales: make(map[key]money.Scale),
		absent: make(map[key]struct{}),
	}
	seen := make(map[key]string)
	for curr, entry := range doc.Currencies {
		if curr == "" {
			return nil, fmt.Errorf("currency: %w", errEmptyName)
		}
		for unit, text := range entry.Units {
			if unit == "" {
				return nil, fmt.Errorf("%v unit: %w", curr, errEmptyName)
			}
			k := newKey(curr, unit)
			if prev, ok := seen[k]; ok {
				return nil, fmt.Errorf("%v %v and %v: %w", curr, unit, prev, errDuplicateUnit)
			}
			seen[k] = curr + " " + unit
			if text == nil {
				t.absent[k] = struct{}{}
				continue
			}
			s, err := parseScale(*text)
			if err != nil {
				return nil, fmt.Errorf("%v %v: %w", curr, unit, err)
			}
			t.scales[k] = s
		}
	}
	return t, nil
}

// parseScale converts "100" or "311034768/10000000" to a scale.
// Only decimal digits are accepted: no decimal points, exponents, base
// prefixes or underscores.
func parseScale(s string) (money.Scale, error) {
	s = strings.TrimSpace(s)
	if !scaleRe.MatchString(s) {
		return money.Scale{}, fmt.Errorf("%w %q", errInvalidScale, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return money.Scale{}, fmt.Errorf("%w %q", errInvalidScale, s)
	}
	return money.NewScaleFromRat(r)
}

// LookupScale implements the [money.ScaleLookup] interface.
// Units not listed in the table are looked up in [money.ISO].
func (t *Table) LookupScale(curr, unit string) (money.Scale, bool) {
	k := newKey(curr, unit)
	if s, ok := t.scales[k]; ok {
		return s, true
	}
	if _, ok := t.absent[k]; ok {
		return money.Scale{}, false
	}
	return money.ISO.LookupScale(curr, unit)
}

// Units returns the sorted names of the units of currency curr that the
// table defines with a scale, not counting units known only to [money.ISO].
func (t *Table) Units(curr string) []string {
	curr = strings.ToUpper(curr)
	var units []string
	for k := range t.scales {
		if k.curr == curr {
			units = append(units, k.unit)
		}
	}
	sort.Strings(units)
	return units
}
