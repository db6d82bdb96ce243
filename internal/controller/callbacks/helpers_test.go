package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegepyq/pyq-bot/internal/model"
)

func TestParseYearData(t *testing.T) {
	year, err := parseYearData("year:2")
	require.NoError(t, err)
	assert.Equal(t, model.YearSecond, year)

	tests := []string{"year:", "year:9", "year:abc", "y2:branch:CSE", "back_to_years"}
	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := parseYearData(data)
			assert.Error(t, err)
		})
	}
}

func TestParseBranchData(t *testing.T) {
	year, branch, err := parseBranchData("y2:branch:CSE")
	require.NoError(t, err)
	assert.Equal(t, model.YearSecond, year)
	assert.Equal(t, model.Branch("CSE"), branch)

	tests := []string{"y2:branch", "y2:slots:CSE", "branch:CSE", "y9:branch:CSE", "yx:branch:CSE"}
	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, _, err := parseBranchData(data)
			assert.Error(t, err)
		})
	}
}

func TestIsBranchData(t *testing.T) {
	assert.True(t, isBranchData("y2:branch:CSE"))
	assert.True(t, isBranchData("y4:branch:EE"))
	assert.False(t, isBranchData("year:2"))
	assert.False(t, isBranchData("back_to_years"))
}
