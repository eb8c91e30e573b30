package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"stockview-be/internal/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = user.User{ID: "1", Name: "Jane", Email: "jane@example.com", Role: user.RoleAdmin}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ""), mr
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "state", "session.json"))
		},
		"redis": func(t *testing.T) Store {
			s, _ := newRedisStore(t)
			return s
		},
	}

	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			u, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)

			require.NoError(t, s.Save(ctx, jane))
			u, err = s.Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, jane, *u)

			require.NoError(t, s.Clear(ctx))
			u, err = s.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, u)

			require.NoError(t, s.Clear(ctx))
		})
	}
}

func TestRedisStore_Key(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, s.Save(context.Background(), jane))

	assert.True(t, mr.Exists(Key))
	raw, err := mr.Get(Key)
	require.NoError(t, err)
	assert.Contains(t, raw, `"email":"jane@example.com"`)
}

func TestRedisStore_Unavailable(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, err := s.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Init restores persisted user", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, jane))

		s := New(store)
		assert.False(t, s.IsAuthenticated())

		require.NoError(t, s.Init(ctx))
		u, ok := s.Current()
		assert.True(t, ok)
		assert.Equal(t, jane, u)
	})

	t.Run("SetUser without persist", func(t *testing.T) {
		store := NewMemoryStore()
		s := New(store)

		require.NoError(t, s.SetUser(ctx, jane, false))
		assert.True(t, s.IsAuthenticated())

		stored, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("SetUser with persist", func(t *testing.T) {
		store := NewMemoryStore()
		s := New(store)

		require.NoError(t, s.SetUser(ctx, jane, true))

		stored, err := store.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, jane, *stored)
	})

	t.Run("Logout clears both", func(t *testing.T) {
		store := NewMemoryStore()
		s := New(store)
		require.NoError(t, s.SetUser(ctx, jane, true))

		require.NoError(t, s.Logout(ctx))

		assert.False(t, s.IsAuthenticated())
		stored, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("Init error keeps anonymous", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

		s := New(NewFileStore(path))
		assert.Error(t, s.Init(ctx))
		assert.False(t, s.IsAuthenticated())
	})
}

var _ user.Session = (*Session)(nil)
