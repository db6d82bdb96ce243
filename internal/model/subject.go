package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Year of study, 1 through 4.
type Year int

const (
	YearFirst  Year = 1
	YearSecond Year = 2
	YearThird  Year = 3
	YearFourth Year = 4
)

// ParseYear parses a year number from callback data or a sheet cell.
func ParseYear(s string) (Year, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse year %q: %w", s, err)
	}
	y := Year(n)
	if y < YearFirst || y > YearFourth {
		return 0, fmt.Errorf("year %d out of range", n)
	}
	return y, nil
}

// Label returns the human-readable form, e.g. "2nd Year".
func (y Year) Label() string {
	return fmt.Sprintf("%d%s Year", int(y), y.suffix())
}

func (y Year) suffix() string {
	switch y {
	case YearFirst:
		return "st"
	case YearSecond:
		return "nd"
	case YearThird:
		return "rd"
	default:
		return "th"
	}
}

// Branch is a short branch code such as "CSE". First-year subjects are
// shared across all branches and carry BranchCommon.
type Branch string

const BranchCommon Branch = "COMMON"

// ParseBranch canonicalizes a branch cell or callback fragment.
func ParseBranch(s string) Branch {
	b := Branch(strings.ToUpper(strings.TrimSpace(s)))
	if b == "" {
		return BranchCommon
	}
	return b
}

// BranchesForYear returns the selectable branches for a year. First year
// has none: its subject set is common to all branches.
func BranchesForYear(y Year) []Branch {
	switch y {
	case YearFirst:
		return nil
	case YearSecond:
		return []Branch{"AE", "MME", "CSE", "ETC", "ME", "EE", "CE", "CHE"}
	default:
		return []Branch{"CSE", "ECE", "ME", "CE", "EE"}
	}
}

// Subject is one row of the question-paper index: a course identified by
// its subject code, with a drive folder holding previous-year papers.
// Records are immutable; the whole set is replaced on each refresh.
type Subject struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	DriveLink string `json:"drive_link"`
	Year      Year   `json:"year"`
	Branch    Branch `json:"branch"`
}

// NormalizeCode canonicalizes user input for code lookup.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
