package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// Callback data formats. Year selection is "year:<n>", branch selection
// "y<n>:branch:<code>", and "back_to_years" returns to the year screen.
const (
	YearPrefix  = "year:"
	BackToYears = "back_to_years"
)

// YearData builds the callback data for a year button.
func YearData(year model.Year) string {
	return fmt.Sprintf("%s%d", YearPrefix, year)
}

// BranchData builds the callback data for a branch button.
func BranchData(year model.Year, branch model.Branch) string {
	return fmt.Sprintf("y%d:branch:%s", year, branch)
}

// Years is the keyboard shown by /start: four year buttons in two rows.
func Years() *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("1st Year", YearData(model.YearFirst)),
			Button("2nd Year", YearData(model.YearSecond)),
		).
		Row(
			Button("3rd Year", YearData(model.YearThird)),
			Button("4th Year", YearData(model.YearFourth)),
		).
		Build()
}

// Branches lays out the branch buttons for a year in rows of three, with
// a back button on its own row. First year has no branches, so the
// keyboard is just the back button.
func Branches(year model.Year) *models.InlineKeyboardMarkup {
	b := NewBuilder()

	var row []models.InlineKeyboardButton
	for _, branch := range model.BranchesForYear(year) {
		row = append(row, Button(string(branch), BranchData(year, branch)))
		if len(row) == 3 {
			b.Row(row...)
			row = nil
		}
	}
	if len(row) > 0 {
		b.Row(row...)
	}

	return b.Row(Button("Back", BackToYears)).Build()
}
