package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegepyq/pyq-bot/internal/model"
)

func TestYears(t *testing.T) {
	kb := Years()

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "1st Year", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "year:1", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "year:4", kb.InlineKeyboard[1][1].CallbackData)
}

func TestBranchesSecondYear(t *testing.T) {
	kb := Branches(model.YearSecond)

	// Eight branches in rows of three plus the back row.
	require.Len(t, kb.InlineKeyboard, 4)
	assert.Len(t, kb.InlineKeyboard[0], 3)
	assert.Len(t, kb.InlineKeyboard[2], 2)

	assert.Equal(t, "y2:branch:AE", kb.InlineKeyboard[0][0].CallbackData)

	back := kb.InlineKeyboard[3]
	require.Len(t, back, 1)
	assert.Equal(t, BackToYears, back[0].CallbackData)
}

func TestBranchesFirstYearIsJustBack(t *testing.T) {
	kb := Branches(model.YearFirst)

	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, BackToYears, kb.InlineKeyboard[0][0].CallbackData)
}

func TestBranchData(t *testing.T) {
	assert.Equal(t, "y3:branch:ECE", BranchData(model.YearThird, "ECE"))
	assert.Equal(t, "year:3", YearData(model.YearThird))
}
