// Package cli formats Vekta output for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperjump/vekta/internal/models"
	"github.com/hyperjump/vekta/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// componentsPerRow is how many vector components fit on one grid line.
const componentsPerRow = 8

// WriteVector writes a vectorized text: the component grid and the derived
// vector length.
func WriteVector(w io.Writer, text string, vec []float64, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"text":   text,
			"dims":   len(vec),
			"norm":   utils.L2Norm(vec),
			"vector": vec,
		})
	}
	fmt.Fprintf(w, "\n%q -> %d dimensions\n\n", text, len(vec))
	for i, c := range vec {
		fmt.Fprintf(w, "%8.4f", c)
		if (i+1)%componentsPerRow == 0 || i == len(vec)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintf(w, "\nVector length: %.4f\n", utils.L2Norm(vec))
	return nil
}

// WriteRecords writes a record list.
func WriteRecords(w io.Writer, recs []*models.RecordView, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	fmt.Fprintf(w, "\n%d records\n\n", len(recs))
	for _, rec := range recs {
		fmt.Fprintf(w, "%-12s (%7.2f, %7.2f, %7.2f)  norm %.4f  %s\n",
			rec.ID, rec.Position.X, rec.Position.Y, rec.Position.Z, rec.Norm,
			utils.Truncate(rec.Text, 60))
	}
	return nil
}

// WriteRankings writes a ranked similarity list with scores and labels.
func WriteRankings(w io.Writer, resp *models.RankingsResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	if len(resp.Results) == 0 {
		fmt.Fprintf(w, "\nNo rankings (no reference selected or store empty)\n")
		return nil
	}
	fmt.Fprintf(w, "\nSimilarity under %s vs %q\n\n", resp.Metric, resp.Results[0].SubjectText)
	for i, res := range resp.Results {
		fmt.Fprintf(w, "%2d. %.4f [%-8s] %s\n",
			i+1, res.Score, res.Label, utils.Truncate(res.OtherText, 60))
	}
	return nil
}
