package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		input   string
		want    Year
		wantErr bool
	}{
		{input: "1", want: YearFirst},
		{input: " 4 ", want: YearFourth},
		{input: "0", wantErr: true},
		{input: "5", wantErr: true},
		{input: "two", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYear(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearLabel(t *testing.T) {
	assert.Equal(t, "1st Year", YearFirst.Label())
	assert.Equal(t, "2nd Year", YearSecond.Label())
	assert.Equal(t, "3rd Year", YearThird.Label())
	assert.Equal(t, "4th Year", YearFourth.Label())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "CS201", NormalizeCode("  cs201\n"))
	assert.Equal(t, "23BS1001", NormalizeCode("23bs1001"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestParseBranch(t *testing.T) {
	assert.Equal(t, Branch("CSE"), ParseBranch(" cse "))
	assert.Equal(t, BranchCommon, ParseBranch(""))
	assert.Equal(t, BranchCommon, ParseBranch("common"))
}

func TestBranchesForYear(t *testing.T) {
	assert.Nil(t, BranchesForYear(YearFirst))
	assert.Len(t, BranchesForYear(YearSecond), 8)
	assert.Equal(t, []Branch{"CSE", "ECE", "ME", "CE", "EE"}, BranchesForYear(YearThird))
	assert.Equal(t, BranchesForYear(YearThird), BranchesForYear(YearFourth))
}

func TestUserStateHasSelection(t *testing.T) {
	var s UserState
	assert.False(t, s.HasSelection())

	s.LastYear = YearSecond
	assert.False(t, s.HasSelection())

	s.LastBranch = "CSE"
	assert.True(t, s.HasSelection())
}
