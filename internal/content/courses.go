package content

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/types"
)

// CourseFilter narrows and orders the course listing.
type CourseFilter struct {
	ActiveOnly bool
	Term       string
	Level      string
	Code       string
	SortBy     string // term, code, name
	Desc       bool
	Limit      int
}

var courseNumberRe = regexp.MustCompile(`(\d+)`)

// courseLevel classifies a course code: 500-level and above is graduate.
func courseLevel(code string) string {
	match := courseNumberRe.FindString(code)
	if match != "" {
		if n, err := strconv.Atoi(match); err == nil && n >= 500 {
			return "graduate"
		}
	}
	return "undergraduate"
}

var yearRe = regexp.MustCompile(`\d{4}`)

// semesterInfo derives semester and calendar year from a term. Term names
// like "Fall 2013/14" carry the year directly; otherwise the three-digit
// term number encodes decade, year and semester (e.g. 251 = Fall 2025).
func semesterInfo(termName string, termNumber int) (semester string, year int) {
	if match := yearRe.FindString(termName); match != "" {
		year, _ = strconv.Atoi(match)
	} else {
		year = 2000
	}

	lower := strings.ToLower(termName)
	switch {
	case strings.Contains(lower, "fall"):
		return "Fall", year
	case strings.Contains(lower, "spring"):
		return "Spring", year
	case strings.Contains(lower, "summer"):
		return "Summer", year
	}

	termStr := strconv.Itoa(termNumber)
	if len(termStr) == 3 {
		semester = "Fall"
		switch termStr[2] {
		case '2':
			semester = "Spring"
		case '3':
			semester = "Summer"
		}
		decade := int(termStr[0]-'0') * 10
		year = 2000 + decade + int(termStr[1]-'0')
		return semester, year
	}

	return "Fall", year
}

// Courses lists courses joined with their term and teacher references.
// Rows with dangling references are skipped rather than failing the whole
// listing.
func (s *Service) Courses(ctx context.Context, filter CourseFilter) ([]types.Course, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var courseRows, termRows, teacherRows []store.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		courseRows, err = s.collection(gctx, "courses")
		return err
	})
	g.Go(func() (err error) {
		termRows, err = s.collection(gctx, "terms")
		return err
	})
	g.Go(func() (err error) {
		teacherRows, err = s.collection(gctx, "teachers")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	termsByID := make(map[string]store.Row, len(termRows))
	for _, row := range termRows {
		termsByID[row.String(store.IDKey)] = row
	}
	teachersByID := make(map[string]store.Row, len(teacherRows))
	for _, row := range teacherRows {
		teachersByID[row.String(store.IDKey)] = row
	}

	courses := make([]types.Course, 0, len(courseRows))
	for _, row := range courseRows {
		termRow, ok := termsByID[row.RefID("term._ref")]
		if !ok {
			log.Printf("course %s references missing term %q", row.String(store.IDKey), row.RefID("term._ref"))
			continue
		}
		teacherRow, ok := teachersByID[row.RefID("teacher._ref")]
		if !ok {
			log.Printf("course %s references missing teacher %q", row.String(store.IDKey), row.RefID("teacher._ref"))
			continue
		}

		semester, year := semesterInfo(termRow.String("name"), termRow.Int("term_num"))

		courses = append(courses, types.Course{
			ID:   row.String(store.IDKey),
			Code: row.String("code"),
			Name: row.String("name"),
			URL:  row.String("url"),
			Term: types.Term{
				Name:       termRow.String("name"),
				Year:       year,
				Semester:   semester,
				IsActive:   termRow.Bool("isActive"),
				TermNumber: termRow.Int("term_num"),
			},
			Teacher: types.Teacher{
				Name:  teacherRow.String("teacher_name"),
				Email: teacherRow.String("email"),
				Title: teacherRow.String("title"),
			},
			Level:   courseLevel(row.String("code")),
			Section: row.String("section"),
			URL2:    row.String("url2"),
			Airbase: row.String("airbase"),
		})
	}

	courses = filterCourses(courses, filter)
	sortCourses(courses, filter.SortBy, filter.Desc)

	return applyLimit(courses, filter.Limit), nil
}

func filterCourses(courses []types.Course, filter CourseFilter) []types.Course {
	kept := courses[:0]
	for _, course := range courses {
		if filter.ActiveOnly && !course.Term.IsActive {
			continue
		}
		if filter.Term != "" {
			name := strings.ToLower(course.Term.Name)
			if !strings.Contains(name, strings.ToLower(filter.Term)) &&
				strconv.Itoa(course.Term.TermNumber) != filter.Term {
				continue
			}
		}
		if filter.Level != "" && course.Level != filter.Level {
			continue
		}
		if filter.Code != "" &&
			!strings.Contains(strings.ToLower(course.Code), strings.ToLower(filter.Code)) {
			continue
		}
		kept = append(kept, course)
	}
	return kept
}

func sortCourses(courses []types.Course, sortBy string, desc bool) {
	sort.SliceStable(courses, func(i, j int) bool {
		var cmp int
		switch sortBy {
		case "code":
			cmp = strings.Compare(courses[i].Code, courses[j].Code)
		case "name":
			cmp = strings.Compare(courses[i].Name, courses[j].Name)
		default: // term
			cmp = courses[i].Term.TermNumber - courses[j].Term.TermNumber
		}
		return direction(cmp, desc)
	})
}
