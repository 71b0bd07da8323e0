package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msgdesk/internal/domain"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleMessages() []domain.Message {
	return []domain.Message{
		{ID: 1, Name: "Marie Dubois", Email: "marie.dubois@email.com", Body: "Projet de transformation digitale", SubmittedAt: at("2024-01-15 14:30"), Status: domain.StatusNew},
		{ID: 2, Name: "Pierre Martin", Email: "p.martin@company.fr", Body: "Formation pour 20 collaborateurs", SubmittedAt: at("2024-01-14 09:15"), Status: domain.StatusRead},
		{ID: 3, Name: "Sophie Laurent", Email: "sophie.laurent@startup.com", Body: "Optimisation performance", SubmittedAt: at("2024-01-13 16:45"), Status: domain.StatusReplied},
		{ID: 4, Name: "Jean Dupont", Email: "jean.dupont@gmail.com", Body: "Excellent travail sur votre site web", SubmittedAt: at("2024-01-12 11:20"), Status: domain.StatusRead},
		{ID: 5, Name: "Claire Moreau", Email: "c.moreau@enterprise.fr", Body: "Une solution complète pour notre TRANSFORMATION digitale", SubmittedAt: at("2024-01-11 13:55"), Status: domain.StatusNew},
	}
}

func newSampleStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(sampleMessages())
	require.NoError(t, err)
	return store
}

func ids(messages []domain.Message) []int {
	out := make([]int, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}
	return out
}

func isSubsequence(sub, full []int) bool {
	j := 0
	for _, id := range full {
		if j < len(sub) && sub[j] == id {
			j++
		}
	}
	return j == len(sub)
}

func TestNewStoreRejectsDuplicateIDs(t *testing.T) {
	messages := sampleMessages()
	messages[3].ID = 2

	_, err := NewStore(messages)
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestNewStoreRejectsInvalidStatus(t *testing.T) {
	messages := sampleMessages()
	messages[0].Status = domain.Status(42)

	_, err := NewStore(messages)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStoreAllKeepsLoadOrder(t *testing.T) {
	store := newSampleStore(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(store.All()))
	assert.Equal(t, 5, store.Len())
}

func TestStoreIsNotAffectedByCallerMutation(t *testing.T) {
	messages := sampleMessages()
	store, err := NewStore(messages)
	require.NoError(t, err)

	messages[0].Name = "changed"
	all := store.All()
	all[1].Name = "changed too"

	first, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Marie Dubois", first.Name)

	second, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Pierre Martin", second.Name)
}

func TestStoreGet(t *testing.T) {
	store := newSampleStore(t)

	msg, err := store.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Sophie Laurent", msg.Name)

	_, err = store.Get(99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmptyStore(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	assert.Empty(t, store.All())
	assert.Empty(t, NewQueryEngine(store).Query("", FilterAll))
	_, err = store.Get(1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreCounts(t *testing.T) {
	counts := newSampleStore(t).Counts()

	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 2, counts.ByStatus[domain.StatusNew])
	assert.Equal(t, 2, counts.ByStatus[domain.StatusRead])
	assert.Equal(t, 1, counts.ByStatus[domain.StatusReplied])
}

func TestQuery(t *testing.T) {
	engine := NewQueryEngine(newSampleStore(t))

	tests := []struct {
		name   string
		term   string
		filter StatusFilter
		want   []int
	}{
		{"empty term all", "", FilterAll, []int{1, 2, 3, 4, 5}},
		{"status new", "", FilterNew, []int{1, 5}},
		{"status read", "", FilterRead, []int{2, 4}},
		{"status replied", "", FilterReplied, []int{3}},
		{"name match", "marie", FilterAll, []int{1}},
		{"case insensitive name", "DUPONT", FilterAll, []int{4}},
		{"email domain", ".fr", FilterAll, []int{2, 5}},
		{"body match in mixed case", "transformation", FilterAll, []int{1, 5}},
		{"term and status", "transformation", FilterNew, []int{1, 5}},
		{"term excluded by status", "transformation", FilterRead, []int{}},
		{"no match", "zzz", FilterAll, []int{}},
		{"accented term", "complète", FilterAll, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(engine.Query(tt.term, tt.filter)))
		})
	}
}

func TestQueryIsOrderPreservingSubsequence(t *testing.T) {
	store := newSampleStore(t)
	engine := NewQueryEngine(store)
	all := ids(store.All())

	for _, term := range []string{"", "a", "e", "@", "digitale", "fr", "xyz", " "} {
		for _, filter := range Filters {
			got := ids(engine.Query(term, filter))
			assert.True(t, isSubsequence(got, all), "term %q filter %s: %v", term, filter, got)
		}
	}
}

func TestQueryMatchesEveryMessageByEmail(t *testing.T) {
	store := newSampleStore(t)
	engine := NewQueryEngine(store)

	for _, msg := range store.All() {
		assert.Contains(t, ids(engine.Query(msg.Email, FilterAll)), msg.ID)
	}
}

func TestQueryByStatusReturnsExactlyThatStatus(t *testing.T) {
	store := newSampleStore(t)
	engine := NewQueryEngine(store)
	counts := store.Counts()

	for _, status := range domain.Statuses {
		got := engine.Query("", FilterFor(status))
		assert.Len(t, got, counts.ByStatus[status])
		for _, msg := range got {
			assert.Equal(t, status, msg.Status)
		}
	}

	onlyNew, err := NewStore([]domain.Message{{ID: 1, Status: domain.StatusNew}})
	require.NoError(t, err)
	assert.Empty(t, NewQueryEngine(onlyNew).Query("", FilterReplied))
}

func TestQueryIsIdempotent(t *testing.T) {
	engine := NewQueryEngine(newSampleStore(t))

	first := engine.Query("a", FilterRead)
	second := engine.Query("a", FilterRead)
	assert.Equal(t, first, second)
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    StatusFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"ALL", FilterAll, false},
		{"new", FilterNew, false},
		{" Read ", FilterRead, false},
		{"replied", FilterReplied, false},
		{"archived", FilterAll, true},
	}

	for _, tt := range tests {
		got, err := ParseStatusFilter(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, domain.ErrInvalidStatus, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStatusFilterNextWraps(t *testing.T) {
	assert.Equal(t, FilterNew, FilterAll.Next(1))
	assert.Equal(t, FilterAll, FilterReplied.Next(1))
	assert.Equal(t, FilterReplied, FilterAll.Next(-1))
	assert.Equal(t, FilterRead, FilterNew.Next(-3))
}

func TestSelection(t *testing.T) {
	store := newSampleStore(t)
	sel := NewSelection(store)

	_, ok := sel.Current()
	assert.False(t, ok, "nothing selected initially")

	require.NoError(t, sel.Select(4))
	msg, ok := sel.Current()
	require.True(t, ok)
	assert.Equal(t, 4, msg.ID)

	id, ok := sel.SelectedID()
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	sel.Clear()
	_, ok = sel.Current()
	assert.False(t, ok)
	_, ok = sel.SelectedID()
	assert.False(t, ok)
}

func TestSelectUnknownIDKeepsPreviousSelection(t *testing.T) {
	sel := NewSelection(newSampleStore(t))
	require.NoError(t, sel.Select(2))

	err := sel.Select(404)
	require.ErrorIs(t, err, domain.ErrNotFound)

	msg, ok := sel.Current()
	require.True(t, ok)
	assert.Equal(t, 2, msg.ID)
}

func TestSelectionIsIndependentOfQuery(t *testing.T) {
	store := newSampleStore(t)
	engine := NewQueryEngine(store)
	sel := NewSelection(store)

	visible := ids(engine.Query("", FilterNew))
	require.NotContains(t, visible, 3)

	require.NoError(t, sel.Select(3))
	_ = engine.Query("marie", FilterNew)

	msg, ok := sel.Current()
	require.True(t, ok)
	assert.Equal(t, 3, msg.ID)
}

func TestEndToEndScenario(t *testing.T) {
	store, err := NewStore([]domain.Message{
		{ID: 1, Name: "a", Email: "a@x", Body: "one", Status: domain.StatusNew},
		{ID: 2, Name: "b", Email: "b@x", Body: "two", Status: domain.StatusRead},
		{ID: 3, Name: "c", Email: "c@x", Body: "three", Status: domain.StatusNew},
	})
	require.NoError(t, err)

	engine := NewQueryEngine(store)
	sel := NewSelection(store)

	newFilter, err := ParseStatusFilter("new")
	require.NoError(t, err)
	allFilter, err := ParseStatusFilter("all")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, ids(engine.Query("", newFilter)))
	assert.Equal(t, []int{1, 2, 3}, ids(engine.Query("", allFilter)))

	require.NoError(t, sel.Select(2))
	msg, ok := sel.Current()
	require.True(t, ok)
	assert.Equal(t, 2, msg.ID)

	sel.Clear()
	_, ok = sel.Current()
	assert.False(t, ok)
}
