// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// row prints one aligned "label value" line of a text report.
func row(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%-10s %v\n", label, value)
}

// num formats a float with full precision and no trailing zeros.
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 15, 64)
}
