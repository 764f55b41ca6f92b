package analyzer

import (
	"testing"
	"time"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/domain"
	tu "github.com/alexanderramin/lifedash/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupIDs(g app.Group) []string {
	ids := make([]string, 0, len(g.Items))
	for _, e := range g.Items {
		ids = append(ids, e.Common().ID)
	}
	return ids
}

func byKey(t *testing.T, groups []app.Group, key string) app.Group {
	t.Helper()
	for _, g := range groups {
		if g.Key == key {
			return g
		}
	}
	t.Fatalf("no group %q", key)
	return app.Group{}
}

func TestGroup_TemporalIsStableAndExhaustive(t *testing.T) {
	cs := []domain.Commitment{
		tu.NewCommitment("a", tu.WithID("a"), tu.WithDueInDays(-1)),
		tu.NewCommitment("b", tu.WithID("b"), tu.WithDueInDays(2)),
		tu.NewCommitment("c", tu.WithID("c"), tu.WithStatus(domain.StatusOverdue)),
		tu.NewCommitment("d", tu.WithID("d"), tu.WithDueInDays(1)),
		tu.NewCommitment("e", tu.WithID("e"), tu.WithStatus(domain.StatusCompleted), tu.WithDueInDays(0)),
	}

	groups, err := Group(domain.AsEntities(cs), DimTemporal, tu.Now)
	require.NoError(t, err)
	require.Len(t, groups, len(Buckets))

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
		assert.Equal(t, len(g.Items), g.Count)
		assert.NotNil(t, g.Items)
	}
	assert.Equal(t, []string{"overdue", "today", "this_week", "later", "no_date"}, keys)

	assert.Equal(t, []string{"a", "c"}, groupIDs(byKey(t, groups, "overdue")))
	assert.Equal(t, []string{"b", "d"}, groupIDs(byKey(t, groups, "this_week")))
	assert.Empty(t, byKey(t, groups, "today").Items, "completed items are not active")
	assert.Equal(t, "This week", byKey(t, groups, "this_week").Label)
}

func TestGroup_TemporalNeedsNow(t *testing.T) {
	_, err := Group(nil, DimTemporal, time.Time{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGroup_UnknownDimension(t *testing.T) {
	_, err := Group(nil, Dimension("colour"), tu.Now)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGroup_LifeArea(t *testing.T) {
	ts := []domain.Task{
		tu.NewTask("w", tu.WithID("w"), tu.WithArea(domain.AreaWork)),
		tu.NewTask("blank", tu.WithID("blank"), tu.WithArea("")),
		tu.NewTask("w2", tu.WithID("w2"), tu.WithArea(domain.AreaWork)),
	}
	groups, err := Group(domain.AsEntities(ts), DimLifeArea, tu.Now)
	require.NoError(t, err)
	require.Len(t, groups, len(domain.LifeAreas))
	assert.Equal(t, []string{"w", "w2"}, groupIDs(byKey(t, groups, "work")))
	assert.Equal(t, []string{"blank"}, groupIDs(byKey(t, groups, "other")))
}

func TestGroup_LifeAreaRejectsUnknownArea(t *testing.T) {
	ts := []domain.Task{tu.NewTask("x", tu.WithArea("space"))}
	_, err := Group(domain.AsEntities(ts), DimLifeArea, tu.Now)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGroup_OriginAndUnspecified(t *testing.T) {
	client := tu.NewCommitment("client", tu.WithID("client"))
	client.Origin = domain.OriginClient
	blank := tu.NewCommitment("blank", tu.WithID("blank"))
	blank.Origin = ""

	groups, err := Group(domain.AsEntities([]domain.Commitment{client, blank}), DimOrigin, tu.Now)
	require.NoError(t, err)
	assert.Equal(t, "unspecified", groups[len(groups)-1].Key)
	assert.Equal(t, []string{"client"}, groupIDs(byKey(t, groups, "client")))
	assert.Equal(t, []string{"blank"}, groupIDs(byKey(t, groups, "unspecified")))
}

func TestGroup_Horizon(t *testing.T) {
	p := tu.NewPriority("q", domain.TierTactical, 1, tu.WithID("q"))
	p.Horizon = domain.HorizonQuarter
	groups, err := Group(domain.AsEntities([]domain.Priority{p}), DimHorizon, tu.Now)
	require.NoError(t, err)
	assert.Equal(t, 1, byKey(t, groups, "quarter").Count)
}

func TestGroup_UnsupportedDimensionForKind(t *testing.T) {
	_, err := Group(domain.AsEntities([]domain.Task{tu.NewTask("t")}), DimOrigin, tu.Now)
	require.ErrorIs(t, err, ErrUnsupportedDimension)

	_, err = Group(domain.AsEntities([]domain.Commitment{tu.NewCommitment("c")}), DimHorizon, tu.Now)
	require.ErrorIs(t, err, ErrUnsupportedDimension)
}

func TestGroup_StatusIncludesTerminal(t *testing.T) {
	hs := []domain.Habit{
		tu.NewHabit("a", nil, tu.WithID("a")),
		tu.NewHabit("b", nil, tu.WithID("b"), tu.WithStatus(domain.StatusCancelled)),
	}
	groups, err := Group(domain.AsEntities(hs), DimStatus, time.Time{})
	require.NoError(t, err)
	require.Len(t, groups, len(domain.Statuses))
	assert.Equal(t, []string{"b"}, groupIDs(byKey(t, groups, "cancelled")))
	assert.Equal(t, "In progress", byKey(t, groups, "in_progress").Label)
}

func TestGroup_ZeroStatusIsPending(t *testing.T) {
	es := []domain.Entity{domain.Commitment{Record: domain.Record{ID: "c1", Title: "unset"}}}

	c, err := Aggregate(es, tu.Now)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Active)

	groups, err := Group(es, DimStatus, tu.Now)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, groupIDs(byKey(t, groups, string(domain.StatusPending))))

	groups, err = Group(es, DimTemporal, tu.Now)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, groupIDs(byKey(t, groups, string(BucketNoDate))))
}

func TestParseDimension(t *testing.T) {
	d, ok := ParseDimension(" Life_Area ")
	assert.True(t, ok)
	assert.Equal(t, DimLifeArea, d)

	_, ok = ParseDimension("weather")
	assert.False(t, ok)
}
