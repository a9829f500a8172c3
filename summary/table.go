package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the per-parameter report to w as aligned plain text.
// Columns are param, mean, std., the five quantiles, rhat and ess, plus
// "ess per sec." when a run time was supplied. Floats are rendered with
// two decimals; the rhat column reads "NA" when only one chain was given.
func (s *Summary) WriteTable(w io.Writer) error {
	s.ensure()
	if s.err != nil {
		return s.err
	}

	headers := []string{"param", "mean", "std.", "2.5%", "25%", "50%", "75%", "97.5%", "rhat", "ess"}
	if s.runTime > 0 {
		headers = append(headers, "ess per sec.")
	}
	align := make([]int, len(headers))
	align[0] = tablewriter.ALIGN_LEFT
	for i := 1; i < len(align); i++ {
		align[i] = tablewriter.ALIGN_RIGHT
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetColumnAlignment(align)
	t.SetBorder(false)
	t.SetHeaderLine(false)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)

	for j := 0; j < s.params; j++ {
		q := s.res.Quantiles[j]
		row := []string{
			s.names[j],
			fmt.Sprintf("%.2f", s.res.Mean[j]),
			fmt.Sprintf("%.2f", s.res.Std[j]),
			fmt.Sprintf("%.2f", q[0]),
			fmt.Sprintf("%.2f", q[1]),
			fmt.Sprintf("%.2f", q[2]),
			fmt.Sprintf("%.2f", q[3]),
			fmt.Sprintf("%.2f", q[4]),
		}
		if s.res.Rhat != nil {
			row = append(row, fmt.Sprintf("%.2f", s.res.Rhat[j]))
		} else {
			row = append(row, "NA")
		}
		row = append(row, fmt.Sprintf("%.2f", s.res.ESS[j]))
		if s.runTime > 0 {
			row = append(row, fmt.Sprintf("%.2f", s.res.ESSPerSec[j]))
		}
		t.Append(row)
	}
	t.Render()

	return nil
}

// Table renders the report of WriteTable as a string.
func (s *Summary) Table() (string, error) {
	var b strings.Builder
	if err := s.WriteTable(&b); err != nil {
		return "", err
	}

	return b.String(), nil
}
