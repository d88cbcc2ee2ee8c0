// Command x12health parses, validates, and renders an ASC X12 healthcare
// transaction file as JSON. See spec §6 for the CLI surface.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/healthedi/x12/engine"
	"github.com/healthedi/x12/tokenize"
	"github.com/healthedi/x12/view"
)

// errValidationFailed marks a run that completed and printed its JSON
// output but found at least one invalid transaction or envelope
// mismatch — the CLI still exits non-zero per spec §6, but the
// diagnostic was already the JSON body itself.
var errValidationFailed = errors.New("one or more transactions failed validation")

type cliOptions struct {
	rawSegments   bool
	modelMode     bool
	excludeUnset  bool
	includeDelims bool
	pretty        bool
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "x12health <file>",
		Short:         "Parse, validate, and render an ASC X12 healthcare transaction file as JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCLI(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.rawSegments, "segments", "s", false, "emit raw tokenized segments, no schema binding")
	cmd.Flags().BoolVarP(&opts.modelMode, "models", "m", false, "emit validated transaction models (default)")
	cmd.Flags().BoolVarP(&opts.excludeUnset, "exclude-unset", "x", false, "exclude unset fields from the rendered output")
	cmd.Flags().BoolVarP(&opts.includeDelims, "delimiters", "d", false, "include delimiter metadata (model mode only)")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "pretty-print the JSON output")
	return cmd
}

func runCLI(out io.Writer, path string, opts cliOptions) error {
	if opts.rawSegments && opts.modelMode {
		return fmt.Errorf("-s and -m are mutually exclusive")
	}
	if opts.rawSegments && opts.includeDelims {
		return fmt.Errorf("-d is a model-mode-only flag")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if opts.rawSegments {
		return runSegments(out, f, opts)
	}
	return runModels(out, f, opts)
}

func runSegments(out io.Writer, r io.Reader, opts cliOptions) error {
	tok := tokenize.New(r)
	viewOpts := view.Options{ExcludeUnset: opts.excludeUnset}

	var segs []view.Segment
	for tok.Scan() {
		segs = append(segs, view.FromSegment(tok.Segment(), tok.Delimiters(), viewOpts))
	}
	if err := tok.Err(); err != nil {
		return err
	}
	return writeJSON(out, map[string]any{"segments": segs}, opts.pretty)
}

func runModels(out io.Writer, r io.Reader, opts cliOptions) error {
	e := engine.New()
	result, err := e.Parse(r)
	if err != nil {
		return err
	}

	viewOpts := view.Options{ExcludeUnset: opts.excludeUnset}
	valid := true
	txViews := make([]view.Transaction, 0, len(result.Transactions))
	for _, res := range result.Transactions {
		if !res.Report.Valid {
			valid = false
		}
		txViews = append(txViews, view.FromTransaction(res.Transaction, res.Report.Errors, opts.includeDelims, viewOpts))
	}

	envelopeErrs := make([]string, 0, len(result.EnvelopeErrors))
	for _, eerr := range result.EnvelopeErrors {
		envelopeErrs = append(envelopeErrs, eerr.Error())
	}

	payload := map[string]any{"transactions": txViews}
	if len(envelopeErrs) > 0 {
		payload["envelope_errors"] = envelopeErrs
		valid = false
	}

	if err := writeJSON(out, payload, opts.pretty); err != nil {
		return err
	}
	if !valid {
		return errValidationFailed
	}
	return nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
