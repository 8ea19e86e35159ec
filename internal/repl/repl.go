// SPDX-License-Identifier: Apache-2.0

// Package repl reads expressions line by line and echoes their canonical
// parsed form.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quill/internal/diag"
	"quill/internal/parser"
	"quill/internal/report"
	"quill/internal/source"
)

const PROMPT = ">> "

func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		src := source.New("repl", line)
		diags := diag.NewBag()

		expr, err := parser.ParseSource(src, diags)
		if err != nil {
			fmt.Fprint(out, report.NewReporter(src).FormatError(err))
			continue
		}

		fmt.Fprintln(out, expr.String())
		for _, d := range diags.All() {
			fmt.Fprintln(out, d.String())
		}
	}
}
