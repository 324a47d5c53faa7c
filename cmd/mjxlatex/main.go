// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gabriel-vasile/mimetype"

	mjxlatex "github.com/OtsoBear/MathJaxToLaTeX-sub000"
)

var version = "dev"

func main() {
	var (
		output      string
		pageMode    bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&output, "o", "", "Output file (default: stdout)")
	flag.StringVar(&output, "output", "", "Output file (default: stdout)")
	flag.BoolVar(&pageMode, "page", false, "Convert the whole page to Markdown with inline $...$ math")
	flag.BoolVar(&verbose, "verbose", false, "Log conversion progress to stderr")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mjxlatex [flags] [source]\n\n")
		fmt.Fprintf(os.Stderr, "Convert MathJax-rendered math (CHTML, SVG, or assistive MathML) to LaTeX.\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  source    HTML file to convert (reads stdin if omitted)\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("mjxlatex %s\n", version)
		os.Exit(0)
	}

	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	var data []byte
	var err error
	if flag.NArg() > 0 {
		data, err = os.ReadFile(flag.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Fatal("read input", "err", err)
	}

	if err := checkInputType(data); err != nil {
		logger.Fatal("unsupported input", "err", err)
	}

	engine := mjxlatex.New(mjxlatex.WithLogger(logger))

	var result string
	if pageMode {
		result, err = engine.ConvertPage(bytes.NewReader(data))
	} else {
		result, err = engine.ConvertReader(bytes.NewReader(data))
	}
	if err != nil {
		if mjxlatex.IsNoMath(err) {
			fmt.Fprintln(os.Stderr, result)
			os.Exit(1)
		}
		logger.Fatal("convert", "err", err)
	}

	out := os.Stdout
	if output != "" {
		f, ferr := os.Create(output)
		if ferr != nil {
			logger.Fatal("create output", "err", ferr)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprintln(out, result)
}

// checkInputType rejects binary inputs before parsing. Rendered pages arrive
// as HTML, XHTML, SVG, or XML.
func checkInputType(data []byte) error {
	mt := mimetype.Detect(data)
	s := mt.String()
	switch {
	case strings.HasPrefix(s, "text/"),
		strings.HasPrefix(s, "application/xhtml"),
		strings.HasPrefix(s, "image/svg"),
		strings.Contains(s, "xml"):
		return nil
	}
	return fmt.Errorf("input looks like %s, expected HTML/SVG/MathML", s)
}
