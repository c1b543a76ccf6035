/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package main provides the command line for inspecting ICC profiles.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mechiko/go-iccprof/pkg/icc"
	"github.com/mechiko/go-iccprof/pkg/icc/config"
	iccLog "github.com/mechiko/go-iccprof/pkg/icc/log"
	"github.com/pkg/errors"
)

var (
	verbose   bool
	fitConfig string
	fitCurves bool
)

func init() {
	flag.BoolVar(&verbose, "v", false, "route the icc trace logger to stderr (the parser itself writes no trace output)")
	flag.StringVar(&fitConfig, "config", "", "path to a fitter tuning YAML file")
	flag.BoolVar(&fitCurves, "fit", false, "fit a parametric curve to each sampled TRC and report its maximum absolute error")
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iccinfo [-v] [-fit] [-config file.yml] profile.icc")
		os.Exit(1)
	}

	if verbose {
		iccLog.SetDefaultTraceLogger()
	}

	opts := icc.DefaultFitOptions()
	if fitConfig != "" {
		cfg, err := config.LoadFile(fitConfig)
		if err != nil {
			fatal(err)
		}
		opts = cfg.FitOptions()
	}

	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(errors.Wrap(err, "iccinfo: read profile"))
	}

	p, err := icc.Parse(buf)
	if err != nil {
		fatal(errors.Wrap(err, "iccinfo: parse profile"))
	}

	printHeader(p)
	printTagTable(p)
	if fitCurves {
		printFits(p, opts)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func printHeader(p *icc.Profile) {
	fmt.Printf("version:      %d.%d.%d\n", p.Header.Version.Major, p.Header.Version.Minor, p.Header.Version.BugFix)
	fmt.Printf("device class: %s\n", icc.FourCC(p.Header.DeviceClass))
	fmt.Printf("color space:  %s\n", p.Header.ColorSpace)
	fmt.Printf("pcs:          %s\n", p.Header.PCS)
	fmt.Printf("checksum:     %s\n", checksumLabel(p.CheckSum))
	fmt.Println()
}

func checksumLabel(s icc.ChecksumStatus) string {
	switch s {
	case icc.ChecksumValid:
		return "valid"
	case icc.ChecksumInvalid:
		return "invalid"
	default:
		return "absent"
	}
}

type row struct{ sig, typ, size string }

func printTagTable(p *icc.Profile) {
	rows := make([]row, p.TagCount())
	sigMax, typMax, sizeMax := len("signature"), len("type"), len("size")
	for i := 0; i < p.TagCount(); i++ {
		t := p.GetTagByIndex(i)
		r := row{
			sig:  t.Signature.String(),
			typ:  t.Type.String(),
			size: fmt.Sprintf("%d", len(t.Data)),
		}
		rows[i] = r
		sigMax = maxWidth(sigMax, r.sig)
		typMax = maxWidth(typMax, r.typ)
		sizeMax = maxWidth(sizeMax, r.size)
	}

	printRow("signature", "type", "size", sigMax, typMax, sizeMax)
	for _, r := range rows {
		printRow(r.sig, r.typ, r.size, sigMax, typMax, sizeMax)
	}
}

func printRow(sig, typ, size string, sigMax, typMax, sizeMax int) {
	fmt.Printf("%s%s  %s%s  %s%s\n",
		sig, pad(sigMax, sig),
		typ, pad(typMax, typ),
		pad(sizeMax, size), size,
	)
}

func pad(width int, s string) string {
	return strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func maxWidth(cur int, s string) int {
	if w := runewidth.StringWidth(s); w > cur {
		return w
	}
	return cur
}

func printFits(p *icc.Profile, opts icc.FitOptions) {
	fmt.Println()
	fmt.Println("fitted transfer functions:")
	report := func(name string, c *icc.Curve) {
		if c == nil || c.Kind != icc.CurveSampled {
			return
		}
		_, maxErr, converged := icc.Approximate(*c, opts)
		fmt.Printf("  %-5s max_error=%.6f converged=%v\n", name, maxErr, converged)
	}
	report("gray", p.GrayTRC)
	report("red", p.RedTRC)
	report("green", p.GreenTRC)
	report("blue", p.BlueTRC)
}
