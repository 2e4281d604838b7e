package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%s"
	PostKeyPrefix      = "post:%d"
	GroupKeyPrefix     = "group:%s"
	PostsPageKeyPrefix = "posts:page:%d:%d"
)

// PageTTL matches the short front-page cache window of the original site:
// repeated reads within 20 seconds may serve a stale snapshot, but post
// mutations invalidate eagerly (see InvalidatePostsList).
const (
	UserTTL  = 5 * time.Minute
	GroupTTL = 10 * time.Minute
	PostTTL  = 30 * time.Minute
	PageTTL  = 20 * time.Second
)

func UserKey(username string) string {
	return fmt.Sprintf(UserKeyPrefix, username)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func GroupKey(slug string) string {
	return fmt.Sprintf(GroupKeyPrefix, slug)
}

func PostsPageKey(limit, offset int) string {
	return fmt.Sprintf(PostsPageKeyPrefix, limit, offset)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserKey(username))
}

func InvalidateGroup(ctx context.Context, slug string) {
	Invalidate(ctx, GroupKey(slug))
}

// InvalidatePostsList drops every cached front page. Called after any post
// mutation so the list never serves a write-skewed snapshot longer than one
// round trip.
func InvalidatePostsList(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "posts:page:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
