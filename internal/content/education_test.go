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

func TestExtractDegreeInfo(t *testing.T) {
	degree, location := extractDegreeInfo("Ph.D. in Mathematics, Virginia Tech, Blacksburg, VA, USA")
	assert.Equal(t, "Ph.D. in Mathematics", degree)
	assert.NotEmpty(t, location)

	degree, _ = extractDegreeInfo("B.Sc. in Mathematics")
	assert.Equal(t, "B.Sc. in Mathematics", degree)

	degree, location = extractDegreeInfo("")
	assert.Equal(t, "Degree", degree)
	assert.Empty(t, location)
}

func TestEducationListing(t *testing.T) {
	fake := storetest.NewFake()
	fake.Add("content", "education",
		store.Row{store.IDKey: "phd", "institution": "Virginia Tech", "year": "2005",
			"content": "Ph.D. in Mathematics, Virginia Tech, Blacksburg, VA, USA"},
		store.Row{store.IDKey: "msc", "institution": "KFUPM", "year": "1999",
			"content": "M.Sc. in Mathematics, KFUPM, Dhahran, Saudi Arabia"},
	)

	svc := NewService(fake, "content", time.Minute, time.Second)

	educations, err := svc.Education(context.Background(), EducationFilter{SortBy: "year", Desc: true})
	require.NoError(t, err)

	require.Len(t, educations, 2)
	assert.Equal(t, "Virginia Tech", educations[0].Institution)
	assert.Equal(t, 2005, educations[0].Year)
	assert.Equal(t, "Ph.D. in Mathematics", educations[0].Degree)

	byInstitution, err := svc.Education(context.Background(), EducationFilter{Institution: "kfupm"})
	require.NoError(t, err)
	require.Len(t, byInstitution, 1)
	assert.Equal(t, "M.Sc. in Mathematics", byInstitution[0].Degree)

	byYear, err := svc.Education(context.Background(), EducationFilter{Year: 2005})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
}
