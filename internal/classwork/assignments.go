package classwork

import (
	"context"
	"sort"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// CurrentAssignments lists the released assignments of the base's current
// term, due date ascending. The solution link is only included once the
// solution has been released.
func (s *Service) CurrentAssignments(ctx context.Context, base string) ([]types.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.store.Query(ctx, base, "Assignments", store.Query{
		Conditions: []store.Condition{
			store.Eq("is_current", true),
			store.Eq("Status", "released"),
		},
	})
	if err != nil {
		return nil, err
	}

	assignments := make([]types.Assignment, 0, len(rows))
	for _, row := range rows {
		a := types.Assignment{
			AssignmentID:     row.String("Assignment_ID"),
			Title:            row.String("Title"),
			AssignmentURL:    row.String("Assignment_URL"),
			DueDate:          row.String("Due_Date"),
			PointsMax:        row.Int("Points_Max"),
			SolutionReleased: row.Bool("solution_released"),
		}
		if a.SolutionReleased {
			a.SolutionURL = row.String("Solution_URL")
		}
		assignments = append(assignments, a)
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].DueDate < assignments[j].DueDate
	})

	return assignments, nil
}
