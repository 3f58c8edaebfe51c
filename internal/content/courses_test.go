package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/store/storetest"
)

func coursesFake() *storetest.Fake {
	fake := storetest.NewFake()
	fake.Add("content", "terms",
		store.Row{store.IDKey: "t251", "name": "Fall 2025", "term_num": int64(251), "isActive": true},
		store.Row{store.IDKey: "t242", "name": "Spring 2024", "term_num": int64(242), "isActive": false},
	)
	fake.Add("content", "teachers",
		store.Row{store.IDKey: "mm", "teacher_name": "M. Mogib", "email": "mm@example.edu", "title": "Professor"},
	)
	fake.Add("content", "courses",
		store.Row{store.IDKey: "c1", "code": "MATH 101", "name": "Calculus I", "url": "https://x/101",
			"section": "01", "term._ref": "t251", "teacher._ref": "mm"},
		store.Row{store.IDKey: "c2", "code": "MATH 557", "name": "Applied Functional Analysis", "url": "https://x/557",
			"section": "01", "term._ref": map[string]any{"id": "t242"}, "teacher._ref": "mm"},
		store.Row{store.IDKey: "dangling", "code": "MATH 999", "name": "Ghost", "url": "",
			"section": "01", "term._ref": "missing", "teacher._ref": "mm"},
	)
	return fake
}

func TestCoursesJoinsTermAndTeacher(t *testing.T) {
	svc := NewService(coursesFake(), "content", time.Minute, time.Second)

	courses, err := svc.Courses(context.Background(), CourseFilter{SortBy: "term", Desc: true})
	require.NoError(t, err)

	// dangling term reference is skipped, not fatal
	require.Len(t, courses, 2)

	assert.Equal(t, "MATH 101", courses[0].Code)
	assert.Equal(t, "Fall", courses[0].Term.Semester)
	assert.Equal(t, 2025, courses[0].Term.Year)
	assert.Equal(t, "M. Mogib", courses[0].Teacher.Name)
	assert.Equal(t, "undergraduate", courses[0].Level)

	// map-shaped reference resolves too
	assert.Equal(t, "MATH 557", courses[1].Code)
	assert.Equal(t, "graduate", courses[1].Level)
	assert.Equal(t, "Spring 2024", courses[1].Term.Name)
}

func TestCoursesFilters(t *testing.T) {
	svc := NewService(coursesFake(), "content", time.Minute, time.Second)

	active, err := svc.Courses(context.Background(), CourseFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "MATH 101", active[0].Code)

	grad, err := svc.Courses(context.Background(), CourseFilter{Level: "graduate"})
	require.NoError(t, err)
	require.Len(t, grad, 1)
	assert.Equal(t, "MATH 557", grad[0].Code)

	byNumber, err := svc.Courses(context.Background(), CourseFilter{Term: "251"})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, "Fall 2025", byNumber[0].Term.Name)

	byCode, err := svc.Courses(context.Background(), CourseFilter{Code: "557"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)

	limited, err := svc.Courses(context.Background(), CourseFilter{Limit: 1, SortBy: "code"})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCourseLevel(t *testing.T) {
	assert.Equal(t, "undergraduate", courseLevel("MATH 101"))
	assert.Equal(t, "graduate", courseLevel("MATH 557"))
	assert.Equal(t, "undergraduate", courseLevel("SEMINAR"))
}

func TestSemesterInfo(t *testing.T) {
	semester, year := semesterInfo("Fall 2013/14", 131)
	assert.Equal(t, "Fall", semester)
	assert.Equal(t, 2013, year)

	semester, year = semesterInfo("Term 251", 251)
	assert.Equal(t, "Fall", semester)

	// no year in the name: derived from the term number
	semester, year = semesterInfo("", 252)
	assert.Equal(t, "Spring", semester)
	assert.Equal(t, 2025, year)

	semester, year = semesterInfo("", 243)
	assert.Equal(t, "Summer", semester)
	assert.Equal(t, 2024, year)
}
