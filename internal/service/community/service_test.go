package community_test

import (
	"context"
	"errors"
	"testing"
	"time"

	myredis "kama_community_server/internal/dao/redis"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service/community"
	"kama_community_server/internal/testutil"
	"kama_community_server/pkg/errorx"
)

func TestCreateAddsOwnerMember(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := community.NewCommunityService(repos, nil, 0)

	c, err := svc.Create(ctx, "u1", request.CreateCommunityRequest{Name: "Gophers"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.OwnerID != "u1" || c.Privacy != "public" {
		t.Fatalf("unexpected community %+v", c)
	}
	m, err := repos.Member.Find(ctx, c.ID, "u1")
	if err != nil || m == nil {
		t.Fatalf("owner membership missing: %v %v", m, err)
	}
}

func TestCreateRequiresActor(t *testing.T) {
	svc := community.NewCommunityService(testutil.NewTestRepos(t), nil, 0)
	_, err := svc.Create(context.Background(), "", request.CreateCommunityRequest{Name: "x"})
	if !errors.Is(err, errorx.ErrUnauthenticated) {
		t.Fatalf("want unauthenticated, got %v", err)
	}
}

func TestOnlyOwnerMayUpdateOrDelete(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := community.NewCommunityService(repos, nil, 0)

	c, err := svc.Create(ctx, "u1", request.CreateCommunityRequest{Name: "Gophers"})
	if err != nil {
		t.Fatal(err)
	}

	name := "Hijacked"
	if _, err := svc.Update(ctx, "u2", c.ID, request.UpdateCommunityRequest{Name: &name}); !errors.Is(err, errorx.ErrForbidden) {
		t.Fatalf("update by stranger: %v", err)
	}
	if err := svc.Delete(ctx, "u2", c.ID); !errors.Is(err, errorx.ErrForbidden) {
		t.Fatalf("delete by stranger: %v", err)
	}
	got, _ := repos.Community.FindByID(ctx, c.ID)
	if got == nil || got.Name != "Gophers" {
		t.Fatalf("community changed by stranger: %+v", got)
	}

	name = "Renamed"
	updated, err := svc.Update(ctx, "u1", c.ID, request.UpdateCommunityRequest{Name: &name})
	if err != nil || updated.Name != "Renamed" {
		t.Fatalf("owner update: %+v %v", updated, err)
	}
	if err := svc.Delete(ctx, "u1", c.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("want not_found after delete, got %v", err)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	svc := community.NewCommunityService(testutil.NewTestRepos(t), nil, 0)
	name := "x"
	_, err := svc.Update(context.Background(), "u1", "com-missing", request.UpdateCommunityRequest{Name: &name})
	if !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestGetReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cache := testutil.NewMemoryCache()
	svc := community.NewCommunityService(repos, cache, time.Minute)

	c, err := svc.Create(ctx, "u1", request.CreateCommunityRequest{Name: "Gophers"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if !cache.Has(myredis.CommunityKey(c.ID)) {
		t.Fatal("cache not filled after miss")
	}
	got, err := svc.Get(ctx, c.ID)
	if err != nil || got.Name != "Gophers" || cache.Hits != 1 {
		t.Fatalf("second get: %+v %v hits=%d", got, err, cache.Hits)
	}

	name := "Renamed"
	if _, err := svc.Update(ctx, "u1", c.ID, request.UpdateCommunityRequest{Name: &name}); err != nil {
		t.Fatal(err)
	}
	if cache.Has(myredis.CommunityKey(c.ID)) {
		t.Fatal("cache not invalidated by update")
	}
	got, _ = svc.Get(ctx, c.ID)
	if got.Name != "Renamed" {
		t.Fatalf("stale read %q", got.Name)
	}
}

func TestListOwnedInvalidatedOnCreate(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cache := testutil.NewMemoryCache()
	svc := community.NewCommunityService(repos, cache, time.Minute)

	list, err := svc.ListOwned(ctx, "u1")
	if err != nil || len(list) != 0 {
		t.Fatalf("empty list: %v %v", list, err)
	}
	if _, err := svc.Create(ctx, "u1", request.CreateCommunityRequest{Name: "A"}); err != nil {
		t.Fatal(err)
	}
	list, err = svc.ListOwned(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("after create: %v %v", list, err)
	}
}

func TestQueuedFillDoesNotResurrectDeletedCommunity(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cache := testutil.NewMemoryCache()
	cache.Deferred = true
	svc := community.NewCommunityService(repos, cache, time.Minute)

	c, err := svc.Create(ctx, "U1", request.CreateCommunityRequest{Name: "Test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, "U1", c.ID); err != nil {
		t.Fatal(err)
	}
	cache.Flush()

	if cache.Has(myredis.CommunityKey(c.ID)) {
		t.Fatal("stale fill written after delete")
	}
	got, err := svc.Get(ctx, c.ID)
	if !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("deleted community still served: %+v err=%v", got, err)
	}
}

func TestQueuedFillDoesNotHideNewOwnedCommunity(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cache := testutil.NewMemoryCache()
	cache.Deferred = true
	svc := community.NewCommunityService(repos, cache, time.Minute)

	if _, err := svc.ListOwned(ctx, "U1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "U1", request.CreateCommunityRequest{Name: "A"}); err != nil {
		t.Fatal(err)
	}
	cache.Flush()

	list, err := svc.ListOwned(ctx, "U1")
	if err != nil || len(list) != 1 {
		t.Fatalf("owned list = %v err=%v", list, err)
	}
}

func TestFillAfterWriteStillCaches(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cache := testutil.NewMemoryCache()
	cache.Deferred = true
	svc := community.NewCommunityService(repos, cache, time.Minute)

	c, err := svc.Create(ctx, "U1", request.CreateCommunityRequest{Name: "Test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	cache.Flush()
	if !cache.Has(myredis.CommunityKey(c.ID)) {
		t.Fatal("fill dropped without a concurrent write")
	}
}
