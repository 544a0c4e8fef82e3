package redis

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolDrainsOnClose(t *testing.T) {
	rc := NewRedisCache(nil, 3, 10)

	var done atomic.Int32
	for i := 0; i < 50; i++ {
		rc.SubmitTask(func() { done.Add(1) })
	}
	rc.Close()

	if got := done.Load(); got != 50 {
		t.Fatalf("executed %d tasks, want 50", got)
	}
}

func TestWorkerSurvivesPanic(t *testing.T) {
	rc := NewRedisCache(nil, 1, 4)

	var done atomic.Int32
	rc.SubmitTask(func() { panic("boom") })
	rc.SubmitTask(func() { done.Add(1) })
	rc.Close()

	if done.Load() != 1 {
		t.Fatal("task after panic did not run")
	}
	// 关闭后提交的任务同步执行
	rc.SubmitTask(func() { done.Add(1) })
	if done.Load() != 2 {
		t.Fatal("task after close did not run")
	}
}

func TestKeys(t *testing.T) {
	if CommunityKey("com-1") != "community_com-1" {
		t.Fatal(CommunityKey("com-1"))
	}
	if OwnedCommunitiesKey("u1") != "community_owned_u1" {
		t.Fatal(OwnedCommunitiesKey("u1"))
	}
}
