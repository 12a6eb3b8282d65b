package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
)

// RenderPlain writes the human-readable report for result to w. Color is a
// presentation detail, not part of the contract (spec §4.7).
func RenderPlain(w io.Writer, result checkpoint.DisplayableResult) {
	switch {
	case result.Canonical != nil:
		root := soleRoot(result.Canonical)

		headerColor.Fprintln(w, "Block root:")
		fmt.Fprintln(w, root)
	case result.NonCanonical != nil:
		headerColor.Fprintln(w, "Conflicting:")

		for root, payloads := range result.NonCanonical {
			fmt.Fprintf(w, "%s\n", root)

			for _, p := range payloads {
				fmt.Fprintf(w, "  %s\n", p.Endpoint)
			}
		}
	}

	if len(result.Failure) > 0 {
		errorColor.Fprintln(w, "Errors:")

		for _, f := range result.Failure {
			fmt.Fprintf(w, "  %s: %s\n", f.Endpoint, f.Error.Error())
		}
	}
}

// RenderVerbose writes the same sections as RenderPlain, but substitutes
// each section's body with the full pretty-printed JSON of the
// corresponding sub-result (spec §4.7).
func RenderVerbose(w io.Writer, result checkpoint.DisplayableResult) {
	if result.Canonical != nil {
		headerColor.Fprintln(w, "Block root:")
		writeJSON(w, result.Canonical)
	}

	if result.NonCanonical != nil {
		headerColor.Fprintln(w, "Conflicting:")
		writeJSON(w, result.NonCanonical)
	}

	if len(result.Failure) > 0 {
		errorColor.Fprintln(w, "Errors:")
		writeJSON(w, result.Failure)
	}
}

func writeJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "<failed to render: %s>\n", err)

		return
	}

	fmt.Fprintln(w, string(data))
}

func soleRoot(canonical map[string][]checkpoint.SuccessPayload) string {
	for root := range canonical {
		return root
	}

	return ""
}
