package gradebook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmogib/classwork-v2/internal/gradebook"
	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/store/storetest"
)

func seededFake() *storetest.Fake {
	fake := storetest.NewFake()
	fake.Add("appMATH101", "GradesFields",
		store.Row{"Field": "midterm", "Label": "Midterm", "Category": "grade", "Order": int64(1), "Display": "yes"},
		store.Row{"Field": "final", "Label": "Final", "Category": "grade", "Order": int64(2), "Display": "yes"},
	)
	fake.Add("appMATH101", "Grades",
		store.Row{"HID": "s-001", "midterm": 87.666},
	)
	return fake
}

func TestReportPartialDisclosure(t *testing.T) {
	svc := gradebook.NewService(seededFake(), time.Second)

	report, err := svc.Report(context.Background(), "appMATH101", "s-001")
	require.NoError(t, err)

	require.Len(t, report.Items, 2)
	assert.Equal(t, 87.67, report.Items[0].Value)
	assert.Equal(t, gradebook.NotPublished, report.Items[1].Value)
	assert.True(t, report.HasUndisclosed)
}

func TestReportFullDisclosure(t *testing.T) {
	fake := seededFake()
	fake.Tables["appMATH101/Grades"][0]["final"] = 91.0

	svc := gradebook.NewService(fake, time.Second)
	report, err := svc.Report(context.Background(), "appMATH101", "s-001")
	require.NoError(t, err)

	assert.False(t, report.HasUndisclosed)
	assert.Equal(t, 91.0, report.Items[1].Value)
}

func TestReportUnknownStudent(t *testing.T) {
	svc := gradebook.NewService(seededFake(), time.Second)

	_, err := svc.Report(context.Background(), "appMATH101", "nobody")
	assert.ErrorIs(t, err, gradebook.ErrStudentNotFound)
}

func TestReportEmptyIdentifier(t *testing.T) {
	svc := gradebook.NewService(seededFake(), time.Second)

	_, err := svc.Report(context.Background(), "appMATH101", "")
	assert.ErrorIs(t, err, gradebook.ErrInvalidIdentifier)
}

func TestReportNoFieldsConfigured(t *testing.T) {
	fake := storetest.NewFake()
	fake.Add("base", "Grades", store.Row{"HID": "s-001", "midterm": 50.0})

	svc := gradebook.NewService(fake, time.Second)
	report, err := svc.Report(context.Background(), "base", "s-001")
	require.NoError(t, err)

	assert.Empty(t, report.Items)
	assert.False(t, report.HasUndisclosed)
}

func TestReportSurfacesStoreFailure(t *testing.T) {
	fake := seededFake()
	fake.Err = store.ErrUnavailable

	svc := gradebook.NewService(fake, time.Second)
	_, err := svc.Report(context.Background(), "appMATH101", "s-001")
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
