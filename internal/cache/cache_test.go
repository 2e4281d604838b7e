package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type page struct {
	Texts []string `json:"texts"`
}

func TestAside(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	t.Run("miss fetches and stores", func(t *testing.T) {
		fetched := 0
		var got page
		err := Aside(ctx, PostsPageKey(10, 0), &got, PageTTL, func() error {
			fetched++
			got = page{Texts: []string{"a", "b"}}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
		assert.True(t, mr.Exists(PostsPageKey(10, 0)))
	})

	t.Run("hit skips the fetch", func(t *testing.T) {
		fetched := 0
		var got page
		err := Aside(ctx, PostsPageKey(10, 0), &got, PageTTL, func() error {
			fetched++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0, fetched)
		assert.Equal(t, []string{"a", "b"}, got.Texts)
	})

	t.Run("entry expires after the ttl window", func(t *testing.T) {
		mr.FastForward(PageTTL + time.Second)

		fetched := 0
		var got page
		err := Aside(ctx, PostsPageKey(10, 0), &got, PageTTL, func() error {
			fetched++
			got = page{Texts: []string{"fresh"}}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
	})

	t.Run("corrupt entry is dropped and refetched", func(t *testing.T) {
		require.NoError(t, mr.Set(PostsPageKey(10, 0), "{not json"))

		fetched := 0
		var got page
		err := Aside(ctx, PostsPageKey(10, 0), &got, PageTTL, func() error {
			fetched++
			got = page{Texts: []string{"recovered"}}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
	})
}

func TestAside_NoClient(t *testing.T) {
	SetClient(nil)

	fetched := 0
	var got page
	err := Aside(context.Background(), "whatever", &got, time.Minute, func() error {
		fetched++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetched)
}

func TestInvalidatePostsList(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(PostsPageKey(10, 0), "[]"))
	require.NoError(t, mr.Set(PostsPageKey(10, 10), "[]"))
	require.NoError(t, mr.Set(GroupKey("travel"), "{}"))

	InvalidatePostsList(ctx)

	assert.False(t, mr.Exists(PostsPageKey(10, 0)))
	assert.False(t, mr.Exists(PostsPageKey(10, 10)))
	assert.True(t, mr.Exists(GroupKey("travel")))
}

func TestInvalidateUserAndGroup(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(UserKey("leo"), "{}"))
	require.NoError(t, mr.Set(GroupKey("travel"), "{}"))

	InvalidateUser(ctx, "leo")
	InvalidateGroup(ctx, "travel")

	assert.False(t, mr.Exists(UserKey("leo")))
	assert.False(t, mr.Exists(GroupKey("travel")))
}
