package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// currency is a row of currency_data.csv.
// An empty Digits means the currency has no minor unit.
type currency struct {
	Name   string
	Code   string
	Num    string
	Digits string
}

var (
	codeRe = regexp.MustCompile(`^[A-Z]{3,}$`)
	numRe  = regexp.MustCompile(`^([0-9]{3})?$`)
)

func main() {
	dir := filepath.Join("scripts", "currency")
	in := flag.String("csv", filepath.Join(dir, "currency_data.csv"), "currency table")
	tmpl := flag.String("tmpl", filepath.Join(dir, "currency_data.tmpl"), "output template")
	out := flag.String("out", "currency_data.go", "generated file")
	flag.Parse()

	currs, err := loadCurrencies(*in)
	if err != nil {
		panic(fmt.Errorf("error loading %v: %v", *in, err))
	}

	code, err := render(*tmpl, currs)
	if err != nil {
		panic(fmt.Errorf("error rendering %v: %v", *tmpl, err))
	}

	if err := os.WriteFile(*out, code, 0o644); err != nil {
		panic(fmt.Errorf("error writing %v: %v", *out, err))
	}
}

// loadCurrencies reads the table, validates every row and sorts the rows
// by code, so that the generated file is stable.
func loadCurrencies(filename string) ([]currency, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("missing header")
	}

	currs := make([]currency, 0, len(recs)-1)
	seen := map[string]bool{}
	for i, rec := range recs[1:] {
		c := currency{
			Name:   strings.TrimSpace(rec[0]),
			Code:   strings.ToUpper(strings.TrimSpace(rec[1])),
			Num:    strings.TrimSpace(rec[2]),
			Digits: strings.TrimSpace(rec[3]),
		}
		line := i + 2
		switch {
		case !codeRe.MatchString(c.Code):
			return nil, fmt.Errorf("line %v: invalid code %q", line, c.Code)
		case !numRe.MatchString(c.Num):
			return nil, fmt.Errorf("line %v: invalid numeric code %q", line, c.Num)
		case seen[c.Code]:
			return nil, fmt.Errorf("line %v: duplicate code %q", line, c.Code)
		}
		if c.Digits != "" {
			if _, err := strconv.ParseUint(c.Digits, 10, 8); err != nil {
				return nil, fmt.Errorf("line %v: invalid minor digits %q", line, c.Digits)
			}
		}
		seen[c.Code] = true
		currs = append(currs, c)
	}

	sort.Slice(currs, func(i, j int) bool {
		return currs[i].Code < currs[j].Code
	})
	return currs, nil
}

// render executes the template and formats the result as Go source.
func render(filename string, currs []currency) ([]byte, error) {
	t, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, currs); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
