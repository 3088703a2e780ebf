// Package cli renders search responses for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/pkg/utils"
	"github.com/olekukonko/tablewriter"
)

// OutputFormat selects how results are written.
type OutputFormat int

const (
	// OutputText renders a human-readable table.
	OutputText OutputFormat = iota
	// OutputCompact renders one result per line.
	OutputCompact
	// OutputJSON renders the whole response as indented JSON.
	OutputJSON
)

const maxReferenceWidth = 40

// WriteResults writes a search response to w in the chosen format.
func WriteResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case OutputCompact:
		for _, r := range response.Results {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.VoterID, r.FullName, r.Reference); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeTable(w, response)
	}
}

func writeTable(w io.Writer, response *models.SearchResponse) error {
	header := color.New(color.FgCyan)
	if _, err := header.Fprintf(w, "\nFound %d voter(s) in %dms\n", response.Total, response.QueryTime); err != nil {
		return err
	}
	if response.Degraded {
		warn := color.New(color.FgYellow)
		if _, err := warn.Fprintln(w, "Warning: some index tiers were unreachable; results may be incomplete"); err != nil {
			return err
		}
	}
	if response.Total == 0 {
		_, err := fmt.Fprintln(w, "No voters matched the search.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Voter ID", "Name", "Gender", "Age", "Reference"})
	for _, r := range response.Results {
		age := ""
		if r.Age > 0 {
			age = strconv.Itoa(r.Age)
		}
		table.Append([]string{
			r.VoterID,
			r.FullName,
			r.Gender,
			age,
			utils.Truncate(r.Reference, maxReferenceWidth),
		})
	}
	table.Render()
	return nil
}
