// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/pkg/format"
	"github.com/iwvelando/revenue-forecast/pkg/revenue"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result forecast.Forecast) {
	writePretty(os.Stdout, result)
}

func writePretty(w io.Writer, result forecast.Forecast) {
	p := message.NewPrinter(language.English)

	_, _ = fmt.Fprintf(w, "--- Revenue forecast: %d months ---\n", result.Inputs.Period)
	_, _ = fmt.Fprintf(w, "Streams: %s\n", enabledNames(result.Inputs.Streams))
	_, _ = p.Fprintf(w, "Total investment: $%.2f\n", result.Summary.TotalInvestment)
	_, _ = p.Fprintf(w, "Monthly revenue:  $%.0f\n", result.Summary.MonthlyRevenue)
	_, _ = p.Fprintf(w, "Total returns:    $%.0f\n", result.Summary.TotalReturns)
	_, _ = fmt.Fprintf(w, "ROI:              %s\n\n", format.Percent(result.Summary.ROI))

	_, _ = fmt.Fprintf(w, "Month | Monthly       | Cumulative    | ROI     | Notes\n")
	_, _ = fmt.Fprintf(w, "_____ | _____________ | _____________ | _______ | _____\n")
	for _, point := range result.Points {
		_, _ = p.Fprintf(w, "%5d | $%.2f | $%.2f | %s | %s\n",
			point.Month, point.Monthly, point.Cumulative, format.Percent(point.ROI),
			strings.Join(result.Notes[point.Month], ","))
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result forecast.Forecast) {
	fmt.Print(CsvString(result))
}

// CsvString renders the forecast as CSV, one row per month.
func CsvString(result forecast.Forecast) string {
	var b strings.Builder
	b.WriteString(`"month","monthly","cumulative","roi"`)
	for _, c := range result.Contributions {
		fmt.Fprintf(&b, `,%s`, csvQuote("monthly ("+c.ID+")"))
	}
	b.WriteString(`,"notes"`)
	b.WriteString("\n")

	for i, point := range result.Points {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f"`, point.Month, point.Monthly, point.Cumulative, point.ROI)
		for _, c := range result.Contributions {
			value := 0.0
			if i < len(c.Monthly) {
				value = c.Monthly[i]
			}
			fmt.Fprintf(&b, `,"%.2f"`, value)
		}
		fmt.Fprintf(&b, `,%s`, csvQuote(strings.Join(result.Notes[point.Month], ",")))
		b.WriteString("\n")
	}
	return b.String()
}

// csvQuote wraps a field in double quotes, doubling any embedded quotes.
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// TableFormat outputs a bordered terminal table.
func TableFormat(result forecast.Forecast) {
	fmt.Println(TableString(result))
}

// TableString renders the forecast as a bordered table with a summary footer.
func TableString(result forecast.Forecast) string {
	rows := make([][]string, 0, len(result.Points))
	for _, point := range result.Points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", point.Month),
			format.Currency(point.Monthly),
			format.Currency(point.Cumulative),
			format.Percent(point.ROI),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Month", "Monthly", "Cumulative", "ROI").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	summary := fmt.Sprintf("Investment %s  Monthly %s  Returns %s  ROI %s",
		format.WholeCurrency(result.Summary.TotalInvestment),
		format.WholeCurrency(result.Summary.MonthlyRevenue),
		format.WholeCurrency(result.Summary.TotalReturns),
		format.Percent(result.Summary.ROI),
	)
	return t.String() + "\n" + summary
}

// BreakdownFormat outputs the platform revenue distribution.
func BreakdownFormat(shares []revenue.Share) {
	writeBreakdown(os.Stdout, shares)
}

func writeBreakdown(w io.Writer, shares []revenue.Share) {
	_, _ = fmt.Fprintf(w, "--- Platform revenue distribution ---\n")
	for _, share := range shares {
		bar := strings.Repeat("#", int(share.Percentage))
		_, _ = fmt.Fprintf(w, "%-16s %5.1f%% %s\n", share.Name, share.Percentage, bar)
	}
}

func enabledNames(streams []revenue.Stream) string {
	enabled := revenue.EnabledStreams(streams)
	if len(enabled) == 0 {
		return "none"
	}
	names := make([]string, 0, len(enabled))
	for _, s := range enabled {
		name := s.Name
		if name == "" {
			name = s.ID
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
