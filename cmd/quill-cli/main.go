// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/repl"
	"quill/internal/report"
	"quill/internal/source"
	"quill/internal/token"
)

var (
	showWhitespace bool
	showComments   bool
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Tokenizer and expression parser for the Quill language",
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file as a single expression and print its canonical form",
	Args:  cobra.ExactArgs(1),
	Run:   runParse,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Scan a file and print every token",
	Args:  cobra.ExactArgs(1),
	Run:   runTokens,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions from stdin and echo their parsed form",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&showWhitespace, "whitespace", false, "emit whitespace tokens")
	tokensCmd.Flags().BoolVar(&showComments, "comments", false, "emit comment tokens")
	rootCmd.AddCommand(parseCmd, tokensCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) {
	startTime := time.Now()
	src := readSource(args[0])
	reporter := report.NewReporter(src)

	diags := diag.NewBag()
	expr, err := parser.ParseSource(src, diags)

	for _, d := range diags.All() {
		fmt.Print(reporter.FormatDiagnostic(d))
	}

	duration := formatDuration(time.Since(startTime))

	if err != nil {
		fmt.Print(reporter.FormatError(err))
		color.Red("Parsing failed after %s", duration)
		os.Exit(1)
	}

	fmt.Println(expr.String())
	color.Green("Successfully parsed %s in %s", src.Name, duration)
}

func runTokens(cmd *cobra.Command, args []string) {
	src := readSource(args[0])
	reporter := report.NewReporter(src)

	diags := diag.NewBag()
	tz := lexer.New(src, diags)
	tz.EmitWhitespace = showWhitespace
	tz.EmitComments = showComments

	for {
		tok, err := tz.Next()
		if err != nil {
			fmt.Print(reporter.FormatError(err))
			color.Red("Scanning failed")
			os.Exit(1)
		}

		fmt.Printf("%4d:%-4d %-18s %q\n",
			tok.Position.Line, tok.Position.Column, tok.Type, tok.Lexeme)

		if tok.Type == token.EOF {
			break
		}
	}

	for _, d := range diags.All() {
		fmt.Print(reporter.FormatDiagnostic(d))
	}
}

func readSource(path string) source.Source {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}
	return source.New(path, string(text))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
