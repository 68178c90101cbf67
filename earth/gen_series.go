//go:build ignore

// gen_series rewrites series.go from the coefficient arrays of a SOFA
// epv00.c, or of a Go port that keeps the same array names (e0x ... s2z).
//
//	go run gen_series.go -in epv00.c -out series.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"regexp"
	"strconv"
)

var (
	number = regexp.MustCompile(`[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eEdD][-+]?\d+)?`)
	block  = regexp.MustCompile(`/\*(?s:.*?)\*/|//[^\n]*`)
)

var series = []struct {
	name, doc string
}{
	{"e0", "sun to Earth, T^0 terms"},
	{"e1", "sun to Earth, T^1 terms"},
	{"e2", "sun to Earth, T^2 terms"},
	{"s0", "barycentre to sun, T^0 terms"},
	{"s1", "barycentre to sun, T^1 terms"},
	{"s2", "barycentre to sun, T^2 terms"},
}

// array finds the brace-delimited initializer following the declaration of
// name and returns its numbers in groups of three.
func array(src []byte, name string) ([][3]float64, error) {
	decl := regexp.MustCompile(`\b` + name + `\b[^;,(){}]*=[^;{]*\{`)
	loc := decl.FindIndex(src)
	if loc == nil {
		return nil, fmt.Errorf("array %s not found", name)
	}

	depth, end := 1, loc[1]
	for ; end < len(src) && depth > 0; end++ {
		switch src[end] {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("array %s: unbalanced braces", name)
	}

	var values []float64
	for _, lit := range number.FindAll(src[loc[1]:end], -1) {
		lit = bytes.Map(func(r rune) rune {
			if r == 'd' || r == 'D' {
				return 'e'
			}
			return r
		}, lit)
		v, err := strconv.ParseFloat(string(lit), 64)
		if err != nil {
			return nil, fmt.Errorf("array %s: %w", name, err)
		}
		values = append(values, v)
	}
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("array %s: %d values is not a whole number of terms", name, len(values))
	}

	var terms [][3]float64
	for i := 0; i < len(values); i += 3 {
		// C has no empty arrays; SOFA pads those with a zero term
		if values[i] == 0 && values[i+1] == 0 && values[i+2] == 0 {
			continue
		}
		terms = append(terms, [3]float64{values[i], values[i+1], values[i+2]})
	}
	return terms, nil
}

func format64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func main() {
	in := flag.String("in", "epv00.c", "SOFA epv00 source")
	out := flag.String("out", "series.go", "output file")
	flag.Parse()

	src, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("ERR: read source: %s", err)
	}
	src = block.ReplaceAll(src, nil)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_series.go; DO NOT EDIT.\n\n")
	buf.WriteString("package earth\n\n")
	buf.WriteString("// Coefficients of the Earth series, SOFA epv00: amplitude, phase and\n")
	buf.WriteString("// frequency per term, ecliptic axes X, Y, Z.\n")

	for _, s := range series {
		fmt.Fprintf(&buf, "\n// %s\nvar %s = [3][]term{\n", s.doc, s.name)
		for _, axis := range []string{"x", "y", "z"} {
			terms, err := array(src, s.name+axis)
			if err != nil {
				log.Fatalf("ERR: %s", err)
			}
			if len(terms) == 0 {
				buf.WriteString("nil,\n")
				continue
			}

			buf.WriteString("{\n")
			for _, t := range terms {
				fmt.Fprintf(&buf, "{%s, %s, %s},\n", format64(t[0]), format64(t[1]), format64(t[2]))
			}
			buf.WriteString("},\n")
		}
		buf.WriteString("}\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("ERR: format output: %s", err)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("ERR: write output: %s", err)
	}
	log.Printf("wrote %s", *out)
}
