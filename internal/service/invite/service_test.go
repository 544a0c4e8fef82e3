package invite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kama_community_server/internal/bot"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/invite"
	"kama_community_server/internal/testutil"
	"kama_community_server/pkg/errorx"
)

func TestJoinSingleUseInvite(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	broker := &testutil.RecordingBroker{}
	svc := invite.NewInviteService(repos, broker)

	c := &model.Community{Name: "Gophers", OwnerID: "u1", Privacy: model.PrivacyPublic}
	if err := repos.Community.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	one := 1
	inv, err := svc.Create(ctx, c.ID, request.CreateInviteRequest{MaxUses: &one})
	if err != nil {
		t.Fatalf("create invite: %v", err)
	}
	if inv.Code == "" || inv.Uses != 0 {
		t.Fatalf("unexpected invite %+v", inv)
	}

	communityID, err := svc.Join(ctx, "u2", inv.Code)
	if err != nil || communityID != c.ID {
		t.Fatalf("first join: %q %v", communityID, err)
	}
	if _, err := svc.Join(ctx, "u3", inv.Code); !errors.Is(err, errorx.ErrInviteExhausted) {
		t.Fatalf("want exhausted, got %v", err)
	}
	if m, _ := repos.Member.Find(ctx, c.ID, "u3"); m != nil {
		t.Fatal("u3 joined through an exhausted invite")
	}

	kinds := broker.Kinds()
	if len(kinds) != 1 || kinds[0] != bot.EventJoin {
		t.Fatalf("published %v", kinds)
	}
}

func TestJoinExistingMemberKeepsUses(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := invite.NewInviteService(repos, nil)

	c := &model.Community{Name: "Gophers", OwnerID: "u1", Privacy: model.PrivacyPublic}
	if err := repos.Community.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	if _, _, err := repos.Member.CreateOrGet(ctx, &model.Member{CommunityID: c.ID, UserID: "u1"}); err != nil {
		t.Fatal(err)
	}
	inv, err := svc.Create(ctx, c.ID, request.CreateInviteRequest{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Join(ctx, "u1", inv.Code); err != nil {
		t.Fatalf("join as member: %v", err)
	}
	got, _ := repos.Invite.FindByCode(ctx, inv.Code)
	if got.Uses != 0 {
		t.Fatalf("uses = %d, want 0", got.Uses)
	}
}

func TestJoinErrors(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := invite.NewInviteService(repos, nil)

	if _, err := svc.Join(ctx, "", "whatever"); !errors.Is(err, errorx.ErrUnauthenticated) {
		t.Fatalf("anonymous join: %v", err)
	}
	if _, err := svc.Join(ctx, "u2", "missing"); !errors.Is(err, errorx.ErrInviteNotFound) {
		t.Fatalf("unknown code: %v", err)
	}

	past := time.Now().Add(-time.Hour).UTC()
	inv, err := svc.Create(ctx, "com-1", request.CreateInviteRequest{ExpiresAt: &past})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Join(ctx, "u2", inv.Code); !errors.Is(err, errorx.ErrInviteExpired) {
		t.Fatalf("expired: %v", err)
	}
}

func TestGetByCode(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := invite.NewInviteService(repos, nil)

	c := &model.Community{Name: "Gophers", OwnerID: "u1", Privacy: model.PrivacyPublic}
	if err := repos.Community.Create(ctx, c); err != nil {
		t.Fatal(err)
	}
	inv, err := svc.Create(ctx, c.ID, request.CreateInviteRequest{})
	if err != nil {
		t.Fatal(err)
	}

	gotInv, gotCom, err := svc.GetByCode(ctx, inv.Code)
	if err != nil || gotInv.ID != inv.ID || gotCom.ID != c.ID {
		t.Fatalf("get by code: %+v %+v %v", gotInv, gotCom, err)
	}
	if _, _, err := svc.GetByCode(ctx, "missing"); !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("missing code: %v", err)
	}
}
