package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hgroves/togglcon/internal/domain"
)

// RenderTable formats rows in aligned columns for terminal display,
// header included.
func RenderTable(rows []domain.Row) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "Date\tBranch\tCharge Type\tProject No\tJob No\tDescription\tHours")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date, row.Branch, row.ChargeType, row.ProjectNo, row.JobNo, row.Description, row.Hours)
	}
	w.Flush()

	return b.String()
}

// RenderTSV formats rows as header-less tab-separated lines, the form
// spreadsheets accept on paste.
func RenderTSV(rows []domain.Row) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date, row.Branch, row.ChargeType, row.ProjectNo, row.JobNo, row.Description, row.Hours)
	}
	return b.String()
}
