package content

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// EmploymentFilter narrows and orders the employment listing.
type EmploymentFilter struct {
	CurrentOnly bool
	SortBy      string // startYear, endYear, position
	Desc        bool
	Limit       int
}

// isCurrentEndYear recognizes the markers the content uses for an ongoing
// position.
func isCurrentEndYear(endYear string) bool {
	switch strings.ToLower(endYear) {
	case "now", "present", "current":
		return true
	}
	return false
}

func (s *Service) employmentFromRow(row store.Row) types.Employment {
	startYear := row.String("startYear")
	endYear := row.String("endYear")
	current := isCurrentEndYear(endYear)

	emp := types.Employment{
		ID:        row.String(store.IDKey),
		Position:  row.String("position"),
		Address:   row.String("address"),
		StartYear: startYear,
		EndYear:   endYear,
		IsCurrent: current,
	}

	start, startErr := strconv.Atoi(startYear)
	if current {
		emp.Duration = fmt.Sprintf("%s - Present", startYear)
		if startErr == nil {
			emp.YearsOfService = s.now().Year() - start
		}
	} else {
		emp.Duration = fmt.Sprintf("%s - %s", startYear, endYear)
		if end, err := strconv.Atoi(endYear); err == nil && startErr == nil {
			emp.YearsOfService = end - start
		}
	}

	return emp
}

// Employment lists employment records with derived duration and
// years-of-service fields.
func (s *Service) Employment(ctx context.Context, filter EmploymentFilter) ([]types.Employment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.collection(ctx, "employment")
	if err != nil {
		return nil, err
	}

	employments := make([]types.Employment, 0, len(rows))
	for _, row := range rows {
		emp := s.employmentFromRow(row)
		if filter.CurrentOnly && !emp.IsCurrent {
			continue
		}
		employments = append(employments, emp)
	}

	currentYear := s.now().Year()
	sort.SliceStable(employments, func(i, j int) bool {
		var cmp int
		switch filter.SortBy {
		case "endYear":
			cmp = endYearValue(employments[i], currentYear) - endYearValue(employments[j], currentYear)
		case "position":
			cmp = strings.Compare(employments[i].Position, employments[j].Position)
		default: // startYear
			cmp = yearValue(employments[i].StartYear) - yearValue(employments[j].StartYear)
		}
		return direction(cmp, filter.Desc)
	})

	return applyLimit(employments, filter.Limit), nil
}

// CurrentEmployment lists only ongoing positions, most recent first.
func (s *Service) CurrentEmployment(ctx context.Context) ([]types.Employment, error) {
	return s.Employment(ctx, EmploymentFilter{
		CurrentOnly: true,
		SortBy:      "startYear",
		Desc:        true,
	})
}

func yearValue(year string) int {
	n, _ := strconv.Atoi(year)
	return n
}

func endYearValue(emp types.Employment, currentYear int) int {
	if emp.IsCurrent {
		return currentYear
	}
	return yearValue(emp.EndYear)
}
