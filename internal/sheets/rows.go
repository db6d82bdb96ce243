package sheets

import (
	"fmt"
	"strings"

	"github.com/collegepyq/pyq-bot/internal/model"
)

// parseRow converts one sheet row into a subject record. The value API
// returns cells as interface{}, practically always strings.
func parseRow(row []interface{}) (model.Subject, error) {
	if len(row) < 4 {
		return model.Subject{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	code := model.NormalizeCode(cell(row, 0))
	name := strings.TrimSpace(cell(row, 1))
	link := strings.TrimSpace(cell(row, 2))

	if code == "" {
		return model.Subject{}, fmt.Errorf("empty subject code")
	}
	if name == "" {
		return model.Subject{}, fmt.Errorf("empty subject name for code %s", code)
	}

	year, err := model.ParseYear(cell(row, 3))
	if err != nil {
		return model.Subject{}, err
	}

	// First-year rows may leave the branch cell empty.
	branch := model.ParseBranch(cell(row, 4))

	return model.Subject{
		Code:      code,
		Name:      name,
		DriveLink: link,
		Year:      year,
		Branch:    branch,
	}, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, ok := row[i].(string)
	if !ok {
		return fmt.Sprint(row[i])
	}
	return s
}
