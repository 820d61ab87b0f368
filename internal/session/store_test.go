package session

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStore_OpenGetClose(t *testing.T) {
	store := NewStore()

	sess := store.Open("file:///test/model.sql", "SELECT 1; SELECT 2;")
	require.NotNil(t, sess)
	_, err := uuid.Parse(sess.ID)
	require.NoError(t, err, "session IDs are UUIDs")
	assert.Equal(t, 1, sess.Version())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	byName, ok := store.Find("file:///test/model.sql")
	require.True(t, ok)
	assert.Same(t, sess, byName)

	assert.True(t, store.Close(sess.ID))
	assert.False(t, store.Close(sess.ID))
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
	_, ok = store.Find("file:///test/model.sql")
	assert.False(t, ok)
}

func TestStore_OpenExistingUpdates(t *testing.T) {
	store := NewStore()

	first := store.Open("a.sql", "SELECT 1;")
	second := store.Open("a.sql", "SELECT 1; SELECT 2;")

	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Version())
	assert.Len(t, second.Segments(), 2)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Names(t *testing.T) {
	store := NewStore()
	store.Open("c.sql", "SELECT c")
	store.Open("a.sql", "SELECT a")
	store.Open("b.sql", "SELECT b")

	assert.Equal(t, []string{"a.sql", "b.sql", "c.sql"}, store.Names())
}

func TestStore_SegmenterOptions(t *testing.T) {
	store := NewStore(script.WithCustomDelimiters("GO"))

	sess := store.Open("batch.sql", "SELECT 1\nGO\nSELECT 2")

	var queries []string
	for _, seg := range sess.Segments() {
		queries = append(queries, seg.Query)
	}
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, queries)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore()
	a := store.Open("a.sql", "SELECT 1;")
	b := store.Open("b.sql", "SELECT 1; SELECT 2; SELECT 3;")

	a.Do(func(seg *script.Segmenter) {
		seg.SetCustomDelimiters([]string{"GO"})
	})

	assert.Len(t, a.Segments(), 1)
	assert.Len(t, b.Segments(), 3)
	b.Do(func(seg *script.Segmenter) {
		assert.Equal(t, []string{";"}, seg.ScriptDelimiters())
	})
}

func TestStore_Concurrent(t *testing.T) {
	store := NewStore()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("file%d.sql", i%4)
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				sess := store.Open(name, fmt.Sprintf("SELECT %d; SELECT %d;", j, j+1))
				if n := len(sess.Segments()); n != 2 {
					return fmt.Errorf("%s: got %d segments", name, n)
				}
				_ = store.Names()
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 4, store.Len())
}
