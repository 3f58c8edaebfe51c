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

func employmentService() *Service {
	fake := storetest.NewFake()
	fake.Add("content", "employment",
		store.Row{store.IDKey: "e1", "position": "Professor", "address": "KFUPM", "startYear": "2015", "endYear": "now"},
		store.Row{store.IDKey: "e2", "position": "Associate Professor", "address": "KFUPM", "startYear": "2008", "endYear": "2015"},
		store.Row{store.IDKey: "e3", "position": "Lecturer", "address": "KFUPM", "startYear": "2001", "endYear": "2004"},
	)

	svc := NewService(fake, "content", time.Minute, time.Second)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestEmploymentDerivedFields(t *testing.T) {
	svc := employmentService()

	employments, err := svc.Employment(context.Background(), EmploymentFilter{SortBy: "startYear", Desc: true})
	require.NoError(t, err)
	require.Len(t, employments, 3)

	current := employments[0]
	assert.True(t, current.IsCurrent)
	assert.Equal(t, "2015 - Present", current.Duration)
	assert.Equal(t, 11, current.YearsOfService)
	assert.Equal(t, "now", current.EndYear)

	past := employments[1]
	assert.False(t, past.IsCurrent)
	assert.Equal(t, "2008 - 2015", past.Duration)
	assert.Equal(t, 7, past.YearsOfService)
}

func TestEmploymentCurrentOnly(t *testing.T) {
	svc := employmentService()

	employments, err := svc.CurrentEmployment(context.Background())
	require.NoError(t, err)

	require.Len(t, employments, 1)
	assert.Equal(t, "Professor", employments[0].Position)
}

func TestEmploymentSortByEndYearTreatsCurrentAsThisYear(t *testing.T) {
	svc := employmentService()

	employments, err := svc.Employment(context.Background(), EmploymentFilter{SortBy: "endYear", Desc: true})
	require.NoError(t, err)

	require.Len(t, employments, 3)
	assert.Equal(t, "Professor", employments[0].Position)
	assert.Equal(t, "Associate Professor", employments[1].Position)
	assert.Equal(t, "Lecturer", employments[2].Position)
}

func TestIsCurrentEndYear(t *testing.T) {
	for _, marker := range []string{"now", "Present", "CURRENT"} {
		assert.True(t, isCurrentEndYear(marker))
	}
	assert.False(t, isCurrentEndYear("2015"))
}
