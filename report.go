package htmlgrade

import (
	"encoding/json"
	"io"
)

// JSONIndent is the indentation used for JSON reports.
const JSONIndent = "    "

// WriteJSON writes result as an indented JSON object followed by a newline.
// Keys keep the sorted order of the result and HTML characters in selectors
// are written as-is.
func WriteJSON(w io.Writer, result *CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	return enc.Encode(result)
}
