package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sanity-io/litter"
)

// Result is the rendered outcome of one invocation.
type Result struct {
	Mode        string   `json:"mode"`
	Size        int      `json:"size"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Length      int      `json:"length"`
	Run         []string `json:"run"`
	Steps       int      `json:"steps"`
	Comparisons int      `json:"comparisons"`
	EarlyExit   bool     `json:"early_exit"`
}

var dumper = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
}

func render(w io.Writer, format string, res Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatDump:
		_, err := fmt.Fprintln(w, dumper.Sdump(res))
		return err
	default:
		sep := " "
		if res.Mode == ModeChars {
			sep = ""
		}
		_, err := fmt.Fprintf(w, "%d %d\n%s\n", res.Start, res.End, strings.Join(res.Run, sep))
		return err
	}
}
