package content

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// ProjectFilter narrows and orders the projects listing.
type ProjectFilter struct {
	Status string
	Year   int
	SortBy string // order, startDate, title, status
	Desc   bool
	Limit  int
}

var (
	grantTitleRe = regexp.MustCompile(`^([^:]+):\s*Title:\s*'([^']+)'`)
	membersRe    = regexp.MustCompile(`Members:\s*([^,]+(?:,\s*[^,]+)*?)(?:,\s*Grant:|$)`)
	roleTagRe    = regexp.MustCompile(`\((?:PI|CO-I)\)`)
	startRe      = regexp.MustCompile(`Start:\s*([^,]+)`)
	endRe        = regexp.MustCompile(`End:\s*([^,]+)`)
	durationRe   = regexp.MustCompile(`duration:\s*(\d+)`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var monthEndDay = map[int]int{
	1: 31, 2: 29, 3: 31, 4: 30, 5: 31, 6: 30,
	7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
}

// approxDate turns a fragment like "Feb 2021" into an ISO date, first or
// last day of the month depending on end.
func approxDate(fragment string, end bool) string {
	yearMatch := yearRe.FindString(fragment)
	if yearMatch == "" {
		return ""
	}

	lower := strings.ToLower(fragment)
	for name, month := range monthNumbers {
		if strings.Contains(lower, name) {
			day := 1
			if end {
				day = monthEndDay[month]
			}
			return fmt.Sprintf("%s-%02d-%02d", yearMatch, month, day)
		}
	}
	return ""
}

// projectInfo is what can be recovered from the grant description text.
type projectInfo struct {
	Title         string
	StartDate     string
	EndDate       string
	Collaborators []string
	GrantInfo     string
	Duration      int
}

// parseProjectText extracts structured fields from a description of the
// form "GRANT-123: Title: 'Some Title', Members: A (PI), B (CO-I),
// Grant: ..., Start: Feb 2021, End: Aug 2023, duration: 30".
func parseProjectText(text string) projectInfo {
	info := projectInfo{Title: text}

	if match := grantTitleRe.FindStringSubmatch(text); match != nil {
		info.GrantInfo = strings.TrimSpace(match[1])
		info.Title = strings.TrimSpace(match[2])
	}

	if match := membersRe.FindStringSubmatch(text); match != nil {
		for _, member := range strings.Split(match[1], ",") {
			member = strings.TrimSpace(roleTagRe.ReplaceAllString(member, ""))
			if member != "" {
				info.Collaborators = append(info.Collaborators, member)
			}
		}
	}

	if match := startRe.FindStringSubmatch(text); match != nil {
		info.StartDate = approxDate(strings.TrimSpace(match[1]), false)
	}
	if match := endRe.FindStringSubmatch(text); match != nil {
		info.EndDate = approxDate(strings.TrimSpace(match[1]), true)
	}
	if match := durationRe.FindStringSubmatch(text); match != nil {
		info.Duration, _ = strconv.Atoi(match[1])
	}

	return info
}

// normalizeStatus maps the legacy "in-progress" marker to "ongoing".
func normalizeStatus(status string) string {
	if status == "in-progress" {
		return "ongoing"
	}
	return status
}

// statusMatches accepts both legacy and current status spellings when
// filtering for active work.
func statusMatches(status, wanted string) bool {
	if status == wanted {
		return true
	}
	if wanted == "active" || wanted == "ongoing" {
		switch status {
		case "in-progress", "active", "ongoing":
			return true
		}
	}
	return false
}

// Projects lists research projects parsed from their grant descriptions.
func (s *Service) Projects(ctx context.Context, filter ProjectFilter) ([]types.Project, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.collection(ctx, "projects")
	if err != nil {
		return nil, err
	}

	projects := make([]types.Project, 0, len(rows))
	for _, row := range rows {
		text := row.String("title")
		info := parseProjectText(text)

		project := types.Project{
			ID:            row.String(store.IDKey),
			Title:         info.Title,
			Description:   text,
			Status:        normalizeStatus(row.String("status")),
			StartDate:     info.StartDate,
			EndDate:       info.EndDate,
			Collaborators: info.Collaborators,
			Order:         row.Int("order"),
			Duration:      info.Duration,
			GrantInfo:     info.GrantInfo,
		}

		if filter.Status != "" && !statusMatches(project.Status, filter.Status) {
			continue
		}
		if filter.Year != 0 && startYear(project.StartDate) != filter.Year {
			continue
		}

		projects = append(projects, project)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		var cmp int
		switch filter.SortBy {
		case "startDate":
			cmp = strings.Compare(projects[i].StartDate, projects[j].StartDate)
		case "title":
			cmp = strings.Compare(projects[i].Title, projects[j].Title)
		case "status":
			cmp = strings.Compare(projects[i].Status, projects[j].Status)
		default: // order
			cmp = projects[i].Order - projects[j].Order
		}
		return direction(cmp, filter.Desc)
	})

	return applyLimit(projects, filter.Limit), nil
}

func startYear(isoDate string) int {
	if len(isoDate) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(isoDate[:4])
	return year
}
