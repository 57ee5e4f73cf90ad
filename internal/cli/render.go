package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/coinpack/coin"
	"github.com/katalvlaran/coinpack/knapsack"
)

// theme collects the styles used by the report.
type theme struct {
	Title lipgloss.Style
	Coins lipgloss.Style
	Total lipgloss.Style
	Warn  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Coins: lipgloss.NewStyle().Faint(true),
		Total: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// plainTheme renders without any styling; used by --plain and tests.
func plainTheme() theme {
	return theme{
		Title: lipgloss.NewStyle(),
		Coins: lipgloss.NewStyle(),
		Total: lipgloss.NewStyle(),
		Warn:  lipgloss.NewStyle(),
	}
}

// renderReport writes the density-ordered denomination list, the chosen
// combination, and its totals.
func renderReport(w io.Writer, th theme, denoms []coin.Coin, res knapsack.Result) {
	fmt.Fprintln(w, th.Title.Render("Coins ordered by most valuable first:"))
	fmt.Fprintln(w, th.Coins.Render(coin.Combination(denoms).String()))

	if len(res.Coins) == 0 {
		fmt.Fprintln(w, th.Warn.Render("No coins fit under this budget."))

		return
	}

	fmt.Fprintln(w, th.Title.Render("Maximum possible result found!"))
	fmt.Fprintln(w, th.Coins.Render(res.Coins.String()))
	fmt.Fprintln(w, th.Total.Render(fmt.Sprintf("Total value: %d", res.Value)))
	fmt.Fprintln(w, th.Total.Render(fmt.Sprintf("Total weight: %d", res.Weight)))
}
