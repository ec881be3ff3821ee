// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/parplot/parbar"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMain(m *testing.M) {
	parbar.Warning.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const jsonDesc = `{
	"domain": {
		"Size": {"levels": ["S", "M", "L"]},
		"Cost": {"min": 0, "max": 100}
	},
	"columns": [
		[{"kind": "discrete", "var": "Size"}],
		[{"kind": "dummy"}, {"kind": "continuous", "var": "Cost"}]
	],
	"padding": {"row": 0.1, "col": 0.1},
	"data": {
		"Size": ["S", "M", "L", "S"],
		"Cost": [10, 20.5, 99, 50]
	},
	"seed": 1
}`

const yamlDesc = `
domain:
  Size: {levels: [S, M, L]}
  Cost: {min: 0, max: 100}
columns:
  - [{kind: discrete, var: Size}]
  - [{kind: dummy}, {kind: continuous, var: Cost}]
padding: {row: 0.1, col: 0.1}
data:
  Size: [S, M, L, S]
  Cost: [10, 20.5, 99, 50]
seed: 1
`

// summary describes the bars and links of p.
func summary(p *parbar.Plot) []string {
	var out []string
	for i, col := range p.Columns() {
		for j := 0; j < col.Len(); j++ {
			b := col.Bar(j)
			if b == nil {
				out = append(out, fmt.Sprintf("%d/%d: empty", i, j))
				continue
			}
			out = append(out, fmt.Sprintf("%d/%d: %s", i, j, b))
			for _, to := range b.Linked() {
				for _, l := range b.Links(to) {
					out = append(out, fmt.Sprintf("  %s %.4g -> %.4g", to, l.From, l.To))
				}
			}
		}
	}
	return out
}

func mustDecode(t *testing.T, desc, format string) *File {
	t.Helper()
	f, err := Decode(strings.NewReader(desc), format)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func mustPlot(t *testing.T, f *File) *parbar.Plot {
	t.Helper()
	p, err := f.Plot()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFormatsAgree(t *testing.T) {
	jf := mustDecode(t, jsonDesc, "json")
	yf := mustDecode(t, yamlDesc, "yaml")
	if !reflect.DeepEqual(jf.Domain, yf.Domain) {
		t.Errorf("domains differ: %v vs %v", jf.Domain, yf.Domain)
	}
	if jf.PlotPadding() != (parbar.Padding{Row: 0.1, Col: 0.1}) {
		t.Errorf("padding = %v", jf.PlotPadding())
	}

	js, ys := summary(mustPlot(t, jf)), summary(mustPlot(t, yf))
	if !reflect.DeepEqual(js, ys) {
		t.Errorf("JSON and YAML plots differ:\n%s\nvs\n%s", strings.Join(js, "\n"), strings.Join(ys, "\n"))
	}

	// Size has 4 observations linked to both bars of column 1.
	p := mustPlot(t, jf)
	size := p.Bar(0, 0)
	if got := size.Linked(); !reflect.DeepEqual(got, []string{"Dummy 1", "Cost"}) {
		t.Errorf("Size linked to %v", got)
	}
	links := size.Links("Cost")
	if len(links) != 4 {
		t.Fatalf("want 4 links to Cost, got %d", len(links))
	}
	if links[1].From != 0.5 || links[1].To != 0.205 {
		t.Errorf("link 1 = %+v, want M (0.5) -> 0.205", links[1])
	}
}

func TestMsgpack(t *testing.T) {
	jf := mustDecode(t, jsonDesc, "json")
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(jf); err != nil {
		t.Fatal(err)
	}
	mf, err := Decode(&buf, "msgpack")
	if err != nil {
		t.Fatal(err)
	}
	js, ms := summary(mustPlot(t, jf)), summary(mustPlot(t, mf))
	if !reflect.DeepEqual(js, ms) {
		t.Errorf("JSON and msgpack plots differ:\n%s\nvs\n%s", strings.Join(js, "\n"), strings.Join(ms, "\n"))
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		desc, format, want string
	}{
		{`{"columns": [[{"kind": "dummy"}]], "bogus": 1}`, "json", "bogus"},
		{`columns: [[{kind: dummy}]]` + "\nbogus: 1\n", "yaml", "bogus"},
		{`{}`, "json", "no columns"},
		{`{}`, "toml", "unknown description format"},
	} {
		_, err := Decode(strings.NewReader(test.desc), test.format)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s %q: want error containing %q, got %v", test.format, test.desc, test.want, err)
		}
	}
}

func TestEmptySlot(t *testing.T) {
	f := mustDecode(t, `
domain:
  Size: {levels: [S, M]}
columns:
  - [{kind: discrete, var: Size}, null]
  - [{kind: dummy}]
data:
  Size: [S, M]
`, "yaml")
	p := mustPlot(t, f)
	if p.Columns()[0].Len() != 2 || p.Bar(0, 1) != nil {
		t.Errorf("want column 0 with an empty second slot, got %v", summary(p))
	}
	if n := len(p.Bar(0, 0).Links("Dummy 1")); n != 2 {
		t.Errorf("want 2 links, got %d", n)
	}
}

func TestInfer(t *testing.T) {
	f := mustDecode(t, `
domain:
  Weight: {}
columns:
  - [{kind: discrete, var: Color}]
  - [{kind: continuous, var: Weight}]
data:
  Color: [red, blue, red, green]
  Weight: [3, 1, 4, 1.5]
`, "yaml")
	data, err := f.Dataset()
	if err != nil {
		t.Fatal(err)
	}
	dom, err := f.PlotDomain(data)
	if err != nil {
		t.Fatal(err)
	}
	want := parbar.Domain{
		"Color":  parbar.Levels("red", "blue", "green"),
		"Weight": parbar.Interval(1, 4),
	}
	if !reflect.DeepEqual(dom, want) {
		t.Errorf("inferred %v, want %v", dom, want)
	}

	p := mustPlot(t, f)
	links := p.Bar(0, 0).Links("Weight")
	if len(links) != 4 || links[1].To != 0 || links[2].To != 1 {
		t.Errorf("bad links %+v", links)
	}
}

func TestDomainErrors(t *testing.T) {
	for _, test := range []struct {
		name, desc, want string
	}{
		{"half interval", `
domain: {Cost: {min: 0}}
columns: [[{kind: continuous, var: Cost}]]
`, "both min and max"},
		{"levels and bounds", `
domain: {Cost: {min: 0, max: 1, levels: [a]}}
columns: [[{kind: continuous, var: Cost}]]
`, "both levels and bounds"},
		{"no data", `
columns: [[{kind: continuous, var: Cost}]]
`, "no data"},
		{"strings for continuous", `
columns: [[{kind: continuous, var: Cost}]]
data: {Cost: [a, b]}
`, "cannot infer bounds"},
		{"mixed values", `
columns: [[{kind: discrete, var: Size}]]
data: {Size: [a, 1]}
`, "mixed strings and numbers"},
		{"both sources", `
columns: [[{kind: dummy}]]
csv: x.csv
data: {Size: [a]}
`, "both csv and inline"},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := mustDecode(t, test.desc, "yaml")
			_, err := f.Plot()
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("want error containing %q, got %v", test.want, err)
			}
		})
	}
}

func TestAlignment(t *testing.T) {
	f := mustDecode(t, `
domain:
  Size: {levels: [S, M, L]}
  Cost: {min: 0, max: 100}
columns:
  - [{kind: discrete, var: Size}]
  - [{kind: continuous, var: Cost}]
data:
  Size: [S, M, L]
  Cost: [1, 2]
`, "yaml")
	_, err := f.Plot()
	var ae *parbar.AlignmentError
	if !errors.As(err, &ae) {
		t.Fatalf("want AlignmentError, got %v", err)
	}
	if ae.FromLen != 3 || ae.ToLen != 2 {
		t.Errorf("got lengths %d, %d", ae.FromLen, ae.ToLen)
	}
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	csvData := "Rating,Cost,Name\n1,10,a\n3,90,b\n2,50,c\n"
	if err := os.WriteFile(filepath.Join(dir, "obs.csv"), []byte(csvData), 0666); err != nil {
		t.Fatal(err)
	}
	desc := `{
		"domain": {"Rating": {"levels": ["1", "2", "3"]}},
		"columns": [
			[{"kind": "discrete", "var": "Rating"}],
			[{"kind": "continuous", "var": "Cost"}],
			[{"kind": "discrete", "var": "Name"}]
		],
		"csv": "obs.csv"
	}`
	path := filepath.Join(dir, "plot.json")
	if err := os.WriteFile(path, []byte(desc), 0666); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	p := mustPlot(t, f)

	// Numeric CSV values link to their discrete levels.
	links := p.Bar(0, 0).Links("Cost")
	var from, to []float64
	for _, l := range links {
		from = append(from, l.From)
		to = append(to, l.To)
	}
	if want := []float64{0.25, 0.75, 0.5}; !reflect.DeepEqual(from, want) {
		t.Errorf("Rating positions %v, want %v", from, want)
	}

	// Cost bounds are inferred from the data.
	cost := p.Bar(1, 0).(*parbar.ContinuousBar)
	if cost.Min() != 10 || cost.Max() != 90 {
		t.Errorf("Cost bounds [%v, %v], want [10, 90]", cost.Min(), cost.Max())
	}
	if want := []float64{0, 1, 0.5}; !reflect.DeepEqual(to, want) {
		t.Errorf("Cost positions %v, want %v", to, want)
	}
}

func TestLoadUnknownExt(t *testing.T) {
	if _, err := Load("plot.toml"); err == nil {
		t.Error("want error for unknown extension")
	}
}
