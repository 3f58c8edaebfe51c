package content

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// EducationFilter narrows and orders the education listing.
type EducationFilter struct {
	Year        int
	Institution string
	SortBy      string // year, institution
	Desc        bool
	Limit       int
}

var (
	degreeRe   = regexp.MustCompile(`^([^,]+)`)
	locationRe = regexp.MustCompile(`,\s*([^,]+(?:,\s*[^,]+)*?)\s*(?:Thesis:|$)`)
)

// extractDegreeInfo pulls the degree and location out of a free-text
// education description such as "M.Sc. in Mathematics, KFUPM, Dhahran,
// Saudi Arabia. Thesis: ...". The degree is the leading comma-delimited
// segment; the location is the trailing segment before any thesis note.
func extractDegreeInfo(description string) (degree, location string) {
	degree = "Degree"
	if match := degreeRe.FindStringSubmatch(description); match != nil {
		degree = strings.TrimSpace(match[1])
	}

	if match := locationRe.FindStringSubmatch(description); match != nil {
		location = strings.TrimSpace(match[1])
	}

	return degree, location
}

// Education lists education records, degree and location derived from the
// description text.
func (s *Service) Education(ctx context.Context, filter EducationFilter) ([]types.Education, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.collection(ctx, "education")
	if err != nil {
		return nil, err
	}

	educations := make([]types.Education, 0, len(rows))
	for _, row := range rows {
		degree, location := extractDegreeInfo(row.String("content"))
		edu := types.Education{
			ID:          row.String(store.IDKey),
			Institution: row.String("institution"),
			Year:        row.Int("year"),
			Degree:      degree,
			Description: row.String("content"),
			Location:    location,
		}

		if filter.Year != 0 && edu.Year != filter.Year {
			continue
		}
		if filter.Institution != "" &&
			!strings.Contains(strings.ToLower(edu.Institution), strings.ToLower(filter.Institution)) {
			continue
		}

		educations = append(educations, edu)
	}

	sort.SliceStable(educations, func(i, j int) bool {
		var cmp int
		switch filter.SortBy {
		case "institution":
			cmp = strings.Compare(educations[i].Institution, educations[j].Institution)
		default: // year
			cmp = educations[i].Year - educations[j].Year
		}
		return direction(cmp, filter.Desc)
	})

	return applyLimit(educations, filter.Limit), nil
}
