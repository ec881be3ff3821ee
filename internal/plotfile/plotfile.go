// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotfile reads parallel bar plot descriptions.
//
// A description names the domain of each variable, the bars in each
// column, and the observations to link. For example, in YAML:
//
//	domain:
//	  Size: {levels: [S, M, L]}
//	  Cost: {min: 0, max: 100}
//	  Weight: {}            # inferred from the data
//	columns:
//	  - [{kind: discrete, var: Size}]
//	  - [{kind: dummy}, {kind: continuous, var: Cost}]
//	  - [{kind: continuous, var: Weight}]
//	data:
//	  Size: [S, M, L, S]
//	  Cost: [10, 20.5, 99, 50]
//	  Weight: [1, 2, 3, 4]
//
// Observations may instead come from a CSV file with a header row,
// named by the "csv" key relative to the description file.
//
// Descriptions may be written as JSON, YAML, or msgpack.
package plotfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/parplot/parbar"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// File is a decoded plot description.
type File struct {
	// Domain describes each variable. Variables that bars use
	// but that are missing here, or that have neither levels nor
	// bounds, are inferred from the data.
	Domain map[string]Var `json:"domain,omitempty" yaml:"domain,omitempty" msgpack:"domain,omitempty"`

	// Columns lists the bars of each column from bottom to top.
	// A nil entry leaves its slot empty.
	Columns [][]*BarSpec `json:"columns" yaml:"columns" msgpack:"columns"`

	// Padding overrides parbar.DefaultPadding.
	Padding *Padding `json:"padding,omitempty" yaml:"padding,omitempty" msgpack:"padding,omitempty"`

	// Data holds inline observations by variable.
	Data map[string][]interface{} `json:"data,omitempty" yaml:"data,omitempty" msgpack:"data,omitempty"`

	// CSV names a CSV file of observations, relative to the
	// directory of the description file.
	CSV string `json:"csv,omitempty" yaml:"csv,omitempty" msgpack:"csv,omitempty"`

	// Width and Height are the output size in pixels.
	Width  int `json:"width,omitempty" yaml:"width,omitempty" msgpack:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty" msgpack:"height,omitempty"`

	// Seed seeds the random level colors of discrete bars.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty" msgpack:"seed,omitempty"`

	// dir is the directory CSV is relative to.
	dir string
}

// Var describes one variable. Levels makes it discrete; Min and Max
// make it continuous.
type Var struct {
	Levels []string `json:"levels,omitempty" yaml:"levels,omitempty" msgpack:"levels,omitempty"`
	Min    *float64 `json:"min,omitempty" yaml:"min,omitempty" msgpack:"min,omitempty"`
	Max    *float64 `json:"max,omitempty" yaml:"max,omitempty" msgpack:"max,omitempty"`
}

// BarSpec describes one bar.
type BarSpec struct {
	Kind string `json:"kind" yaml:"kind" msgpack:"kind"`
	Var  string `json:"var,omitempty" yaml:"var,omitempty" msgpack:"var,omitempty"`
}

// Padding mirrors parbar.Padding.
type Padding struct {
	Row float64 `json:"row" yaml:"row" msgpack:"row"`
	Col float64 `json:"col" yaml:"col" msgpack:"col"`
}

// Formats are the description formats, by file extension.
var Formats = map[string]string{
	".json":    "json",
	".yaml":    "yaml",
	".yml":     "yaml",
	".msgpack": "msgpack",
	".mp":      "msgpack",
}

// Load reads the description in path. The format is determined by the
// extension of path.
func Load(path string) (*File, error) {
	format, ok := Formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%s: unknown description format", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Decode reads a description in the given format ("json", "yaml", or
// "msgpack") from r. A CSV reference in it is relative to the current
// directory.
func Decode(r io.Reader, format string) (*File, error) {
	f := new(File)
	var err error
	switch format {
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(f)
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(f)
	case "msgpack":
		err = msgpack.NewDecoder(r).Decode(f)
	default:
		return nil, fmt.Errorf("unknown description format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("description has no columns")
	}
	return f, nil
}

// PlotPadding returns the padding the description asks for.
func (f *File) PlotPadding() parbar.Padding {
	if f.Padding == nil {
		return parbar.DefaultPadding
	}
	return parbar.Padding{Row: f.Padding.Row, Col: f.Padding.Col}
}

// Dataset returns the observations of the description, either from
// its CSV file or from its inline data.
func (f *File) Dataset() (parbar.Dataset, error) {
	if f.CSV != "" && f.Data != nil {
		return nil, fmt.Errorf("description has both csv and inline data")
	}
	if f.CSV != "" {
		path := f.CSV
		if !filepath.IsAbs(path) {
			path = filepath.Join(f.dir, path)
		}
		r, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		t, err := ReadCSV(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	}

	obs := make(parbar.Observations, len(f.Data))
	for name, vals := range f.Data {
		col, err := typedColumn(vals)
		if err != nil {
			return nil, fmt.Errorf("data %q: %w", name, err)
		}
		obs[name] = col
	}
	return obs, nil
}

// ReadCSV reads a table of observations from CSV with a header row.
// Columns whose values all parse as numbers become numeric columns.
func ReadCSV(r io.Reader) (*table.Table, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing CSV header")
	}
	return table.TableFromStrings(rows[0], rows[1:], true), nil
}

// typedColumn converts decoded values into a []string if they are
// all strings or a []float64 if they are all numbers.
func typedColumn(vals []interface{}) (table.Slice, error) {
	var strs []string
	var nums []float64
	for i, v := range vals {
		switch v := v.(type) {
		case string:
			strs = append(strs, v)
		default:
			rv := reflect.ValueOf(v)
			if !rv.IsValid() || !isNumber(rv.Kind()) {
				return nil, fmt.Errorf("value %d (%v) is %T, not a string or number", i, v, v)
			}
			nums = append(nums, rv.Convert(reflect.TypeOf(float64(0))).Float())
		}
		if strs != nil && nums != nil {
			return nil, fmt.Errorf("mixed strings and numbers at value %d", i)
		}
	}
	if nums != nil {
		return nums, nil
	}
	if strs == nil {
		strs = []string{}
	}
	return strs, nil
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// PlotDomain returns the plot domain of the description, inferring
// variables that bars use but that the description leaves open.
// Discrete variables take their levels from data in first-seen order,
// and continuous variables take the bounds of their data.
func (f *File) PlotDomain(data parbar.Dataset) (parbar.Domain, error) {
	dom := make(parbar.Domain)
	for name, v := range f.Domain {
		switch {
		case len(v.Levels) > 0:
			if v.Min != nil || v.Max != nil {
				return nil, fmt.Errorf("variable %q has both levels and bounds", name)
			}
			dom[name] = parbar.Levels(v.Levels...)
		case v.Min != nil && v.Max != nil:
			dom[name] = parbar.Interval(*v.Min, *v.Max)
		case v.Min != nil || v.Max != nil:
			return nil, fmt.Errorf("variable %q needs both min and max", name)
		}
	}

	for _, col := range f.Columns {
		for _, spec := range col {
			if spec == nil || spec.Var == "" {
				continue
			}
			if _, ok := dom[spec.Var]; ok {
				continue
			}
			kind, err := parbar.ParseBarKind(spec.Kind)
			if err != nil {
				return nil, err
			}
			v, err := infer(spec.Var, kind, data)
			if err != nil {
				return nil, err
			}
			dom[spec.Var] = v
		}
	}
	return dom, nil
}

func infer(name string, kind parbar.BarKind, data parbar.Dataset) (parbar.Variable, error) {
	seq := data.Column(name)
	if seq == nil {
		return parbar.Variable{}, fmt.Errorf("cannot infer domain of %q: no data", name)
	}
	rv := reflect.ValueOf(seq)
	switch kind {
	case parbar.Discrete:
		var levels []string
		seen := make(map[string]bool)
		for i := 0; i < rv.Len(); i++ {
			l := fmt.Sprint(rv.Index(i).Interface())
			if !seen[l] {
				seen[l] = true
				levels = append(levels, l)
			}
		}
		return parbar.Levels(levels...), nil

	case parbar.Continuous:
		if !isNumber(rv.Type().Elem().Kind()) {
			return parbar.Variable{}, fmt.Errorf("cannot infer bounds of %q: data is %s", name, rv.Type())
		}
		xs := make([]float64, rv.Len())
		for i := range xs {
			xs[i] = rv.Index(i).Convert(reflect.TypeOf(float64(0))).Float()
		}
		min, max := stats.Sample{Xs: xs}.Bounds()
		return parbar.Interval(min, max), nil
	}
	return parbar.Variable{}, fmt.Errorf("cannot infer domain of %q for %s bar", name, kind)
}

// Plot builds the plot the description describes and links it with
// the description's data.
func (f *File) Plot() (*parbar.Plot, error) {
	data, err := f.Dataset()
	if err != nil {
		return nil, err
	}
	dom, err := f.PlotDomain(data)
	if err != nil {
		return nil, err
	}
	p := parbar.New(dom)
	if f.Seed != nil {
		p.SetRand(rand.New(rand.NewSource(*f.Seed)))
	}
	for i, col := range f.Columns {
		if _, err := p.AddColumn(len(col)); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		for j, spec := range col {
			if spec == nil {
				continue
			}
			kind, err := parbar.ParseBarKind(spec.Kind)
			if err != nil {
				return nil, err
			}
			if _, err := p.AddBar(i, j, kind, spec.Var); err != nil {
				return nil, err
			}
		}
	}
	if err := p.Link(data); err != nil {
		return nil, err
	}
	return p, nil
}
