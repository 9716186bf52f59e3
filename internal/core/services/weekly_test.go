package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbit-labs/weekrep-cli/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datedDoc(id, dateText string) domain.Document {
	return domain.Document{
		ID:       id,
		DateText: dateText,
		Properties: []domain.Property{
			{Name: "Name", Type: domain.PropertyTitle, Value: "entry " + id},
			{Name: "Date", Type: domain.PropertyDate, Value: dateText},
		},
	}
}

func projectService(t *testing.T) *WeeklyService {
	t.Helper()
	svc, err := NewWeeklyService(domain.WeekPolicyProject, domain.WeekParams{Anchor: day(2025, time.July, 1)})
	require.NoError(t, err)
	return svc
}

func TestNewWeeklyService_InvalidPolicy(t *testing.T) {
	_, err := NewWeeklyService(domain.WeekPolicy("fiscal"), domain.WeekParams{})
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestNewWeeklyService_ProjectWithoutAnchor(t *testing.T) {
	_, err := NewWeeklyService(domain.WeekPolicyProject, domain.WeekParams{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWeeklyService_Classify_ProjectPolicy(t *testing.T) {
	svc := projectService(t)

	buckets, err := svc.Classify([]domain.Document{
		datedDoc("d1", "2025-07-01"),
		datedDoc("d2", "2025-07-08"),
		datedDoc("d3", "2025-06-30"),
		datedDoc("d4", "2025-07-07"),
	})
	require.NoError(t, err)

	require.Len(t, buckets, 3)
	assert.Equal(t, []int{0, 1, 2}, svc.Weeks())

	week1, err := svc.Bucket(1)
	require.NoError(t, err)
	require.Len(t, week1, 2)
	assert.Equal(t, "d1", week1[0].ID)
	assert.Equal(t, "d4", week1[1].ID)

	week0, err := svc.Bucket(0)
	require.NoError(t, err)
	require.Len(t, week0, 1)
	assert.Equal(t, "d3", week0[0].ID)
}

func TestWeeklyService_Classify_AttachesDateInfo(t *testing.T) {
	svc := projectService(t)

	_, err := svc.Classify([]domain.Document{datedDoc("d1", "2025-07-09")})
	require.NoError(t, err)

	week2, err := svc.Bucket(2)
	require.NoError(t, err)
	info := week2[0].DateInfo
	require.NotNil(t, info)
	assert.Equal(t, 2, info.Week)
	assert.Equal(t, day(2025, time.July, 9), info.Date)
	assert.Equal(t, "Jul 9 (Wed)", info.Formatted)
	require.NotNil(t, info.Range)
	assert.Equal(t, day(2025, time.July, 8), info.Range.Start)
	assert.Equal(t, day(2025, time.July, 14), info.Range.End)
}

func TestWeeklyService_Classify_ExcludesDatelessDocuments(t *testing.T) {
	svc := projectService(t)

	buckets, err := svc.Classify([]domain.Document{
		datedDoc("d1", "2025-07-02"),
		datedDoc("d2", ""),
		datedDoc("d3", "not a date"),
	})
	require.NoError(t, err)

	require.Len(t, buckets, 1)
	docs, err := svc.Bucket(1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestWeeklyService_Classify_ISOCollapsesYears(t *testing.T) {
	svc, err := NewWeeklyService(domain.WeekPolicyISO, domain.WeekParams{})
	require.NoError(t, err)

	_, err = svc.Classify([]domain.Document{
		datedDoc("w1", "2025-01-01"),
		datedDoc("w2a", "2025-01-06"),
		datedDoc("w2b", "2025-01-07"),
	})
	require.NoError(t, err)

	week2, err := svc.Bucket(2)
	require.NoError(t, err)
	require.Len(t, week2, 2)
	assert.Equal(t, "w2a", week2[0].ID)
	assert.Equal(t, "w2b", week2[1].ID)

	// Same week number from a different ISO year lands in the same
	// bucket: the year component is discarded by design.
	_, err = svc.Classify([]domain.Document{
		datedDoc("w1-2025", "2025-01-01"),
		datedDoc("w1-2024", "2024-01-01"),
	})
	require.NoError(t, err)
	week1, err := svc.Bucket(1)
	require.NoError(t, err)
	assert.Len(t, week1, 2)
}

func TestWeeklyService_Reclassify_IsTotalReplace(t *testing.T) {
	svc := projectService(t)

	_, err := svc.Classify([]domain.Document{
		datedDoc("d1", "2025-06-30"),
		datedDoc("d2", "2025-07-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, svc.Weeks())

	// Switch policy, then reclassify explicitly.
	require.NoError(t, svc.SetPolicy(domain.WeekPolicyMonthly, domain.WeekParams{}))
	assert.Equal(t, []int{0, 3}, svc.Weeks(), "policy switch alone must not reclassify")

	_, err = svc.Classify([]domain.Document{
		datedDoc("d1", "2025-06-30"),
		datedDoc("d2", "2025-07-20"),
	})
	require.NoError(t, err)

	// June 30 2025 opens the sixth week of June (first Monday June 2);
	// July 20 falls in week 3 of July. No bucket from the project run
	// survives.
	assert.Equal(t, []int{3, 6}, svc.Weeks())
	_, err = svc.Bucket(0)
	assert.ErrorIs(t, err, domain.ErrWeekNotFound)
}

func TestWeeklyService_Classify_NewAnchorRebuildsEverything(t *testing.T) {
	svc := projectService(t)
	docs := []domain.Document{datedDoc("d1", "2025-07-01"), datedDoc("d2", "2025-07-15")}

	_, err := svc.Classify(docs)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, svc.Weeks())

	require.NoError(t, svc.SetPolicy(domain.WeekPolicyProject, domain.WeekParams{Anchor: day(2025, time.July, 8)}))
	_, err = svc.Classify(docs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, svc.Weeks())
}

func TestWeeklyService_Bucket_NotFound(t *testing.T) {
	svc := projectService(t)

	_, err := svc.Bucket(7)
	assert.ErrorIs(t, err, domain.ErrWeekNotFound)
}

func TestWeeklyService_Preview(t *testing.T) {
	svc := projectService(t)

	_, err := svc.Classify([]domain.Document{
		datedDoc("d1", "2025-07-01"),
		datedDoc("d2", "2025-07-02"),
		datedDoc("d3", "2025-07-03"),
		datedDoc("d4", "2025-07-04"),
		datedDoc("d5", "2025-07-05"),
	})
	require.NoError(t, err)

	preview, err := svc.Preview(1)
	require.NoError(t, err)
	assert.Equal(t, 1, preview.Week)
	assert.Equal(t, 5, preview.Total)
	require.Len(t, preview.Documents, 3)
	assert.Equal(t, "d1", preview.Documents[0].ID)
	assert.Equal(t, 2, preview.More)
	require.NotNil(t, preview.Range)
	assert.Equal(t, day(2025, time.July, 1), preview.Range.Start)
}

func TestWeeklyService_Preview_SmallBucket(t *testing.T) {
	svc, err := NewWeeklyService(domain.WeekPolicyMonthly, domain.WeekParams{})
	require.NoError(t, err)

	_, err = svc.Classify([]domain.Document{datedDoc("d1", "2025-07-02")})
	require.NoError(t, err)

	preview, err := svc.Preview(1)
	require.NoError(t, err)
	assert.Equal(t, 1, preview.Total)
	assert.Len(t, preview.Documents, 1)
	assert.Equal(t, 0, preview.More)
	assert.Nil(t, preview.Range, "no range outside the project policy")
}

func TestWeeklyService_LastRunID(t *testing.T) {
	svc := projectService(t)
	assert.Empty(t, svc.LastRunID())

	_, err := svc.Classify(nil)
	require.NoError(t, err)
	first := svc.LastRunID()
	assert.NotEmpty(t, first)

	_, err = svc.Classify(nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, svc.LastRunID())
}
