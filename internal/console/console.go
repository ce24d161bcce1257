// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package console provides the status reporter used for human-facing
// progress output. The reporter is constructed once and passed to the
// components that need it; no package mutates global printer or color
// state, so two reporters with different settings can coexist in tests.
package console

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Options controls reporter construction.
type Options struct {
	// Quiet suppresses informational and success output. Warnings and
	// errors are always printed.
	Quiet bool

	// NoColor prints plain prefixes without ANSI styling.
	NoColor bool

	// Writer receives all output. Defaults to os.Stderr so report
	// artifacts and shell pipelines stay clean.
	Writer io.Writer
}

// Reporter prints prefixed, optionally colored status lines.
type Reporter struct {
	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	failure pterm.PrefixPrinter
	quiet   bool
	out     io.Writer
}

// New builds a Reporter from opts.
func New(opts Options) *Reporter {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		info:    clonePrinter(pterm.Info, w, opts.NoColor),
		success: clonePrinter(pterm.Success, w, opts.NoColor),
		warning: clonePrinter(pterm.Warning, w, opts.NoColor),
		failure: clonePrinter(pterm.Error, w, opts.NoColor),
		quiet:   opts.Quiet,
		out:     w,
	}
}

// clonePrinter copies one of pterm's default prefix printers and rebinds it
// to the reporter's writer, stripping styles when color is disabled.
func clonePrinter(p pterm.PrefixPrinter, w io.Writer, noColor bool) pterm.PrefixPrinter {
	p.Writer = w
	if noColor {
		plain := pterm.NewStyle()
		p.MessageStyle = plain
		p.Prefix.Style = plain
	}
	return p
}

// Infof reports routine progress. Suppressed in quiet mode.
func (r *Reporter) Infof(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	r.info.Printfln(format, args...)
}

// Successf reports a completed step. Suppressed in quiet mode.
func (r *Reporter) Successf(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	r.success.Printfln(format, args...)
}

// Warnf reports a recoverable problem. Always printed.
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.warning.Printfln(format, args...)
}

// Errorf reports a failure. Always printed.
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.failure.Printfln(format, args...)
}

// Blank prints an empty spacer line. Suppressed in quiet mode.
func (r *Reporter) Blank() {
	if r.quiet {
		return
	}
	_, _ = io.WriteString(r.out, "\n")
}
