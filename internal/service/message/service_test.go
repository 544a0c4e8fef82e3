package message_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kama_community_server/internal/bot"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/message"
	"kama_community_server/internal/testutil"
	"kama_community_server/pkg/errorx"
)

func strPtr(s string) *string { return &s }

func TestSendDefaultsContent(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	broker := &testutil.RecordingBroker{}
	svc := message.NewMessageService(repos, broker, message.Options{})

	msg, err := svc.Send(ctx, "u1", "ch-1", request.SendMessageRequest{})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Content != "" || msg.AuthorID != "u1" || msg.ChannelID != "ch-1" || msg.EditedAt != nil {
		t.Fatalf("unexpected message %+v", msg)
	}
	events := broker.Events()
	if len(events) != 1 || events[0].Kind != bot.EventMessage || events[0].Message.ID != msg.ID {
		t.Fatalf("published %+v", events)
	}
}

func TestSendRequiresActor(t *testing.T) {
	svc := message.NewMessageService(testutil.NewTestRepos(t), nil, message.Options{})
	_, err := svc.Send(context.Background(), "", "ch-1", request.SendMessageRequest{Content: strPtr("hi")})
	if !errors.Is(err, errorx.ErrUnauthenticated) {
		t.Fatalf("want unauthenticated, got %v", err)
	}
}

func TestSendKeepsPlainTextVerbatim(t *testing.T) {
	ctx := context.Background()
	svc := message.NewMessageService(testutil.NewTestRepos(t), nil, message.Options{})

	content := "it's 3 < 5 & a <b>x</b>"
	msg, err := svc.Send(ctx, "u1", "ch-1", request.SendMessageRequest{Content: &content})
	if err != nil {
		t.Fatal(err)
	}
	if msg.Content != content {
		t.Fatalf("content = %q, want %q", msg.Content, content)
	}
}

func TestSanitizerStripsScripts(t *testing.T) {
	ctx := context.Background()
	svc := message.NewMessageService(testutil.NewTestRepos(t), nil, message.Options{Sanitizer: message.NewContentPolicy()})

	msg, err := svc.Send(ctx, "u1", "ch-1", request.SendMessageRequest{Content: strPtr("<strong>hi</strong><script>alert(1)</script>")})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(msg.Content, "script") || !strings.Contains(msg.Content, "hi") {
		t.Fatalf("content = %q", msg.Content)
	}
}

func TestListClampsLimit(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	svc := message.NewMessageService(repos, nil, message.Options{DefaultLimit: 2, MaxLimit: 3})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		m := &model.Message{ChannelID: "ch-1", AuthorID: "u1", Content: string(rune('a' + i)), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repos.Message.Create(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.List(ctx, "ch-1", request.ListMessagesRequest{})
	if err != nil || len(got) != 2 || got[0].Content != "d" || got[1].Content != "e" {
		t.Fatalf("default limit: %+v %v", got, err)
	}
	got, err = svc.List(ctx, "ch-1", request.ListMessagesRequest{Limit: 50})
	if err != nil || len(got) != 3 {
		t.Fatalf("clamped limit: %d %v", len(got), err)
	}
	before := base.Add(2 * time.Minute)
	got, err = svc.List(ctx, "ch-1", request.ListMessagesRequest{Limit: 10, Before: &before})
	if err != nil || len(got) != 2 || got[1].Content != "b" {
		t.Fatalf("before cursor: %+v %v", got, err)
	}
	empty, err := svc.List(ctx, "ch-none", request.ListMessagesRequest{})
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty channel: %v %v", empty, err)
	}
}

func TestEditSetsEditedAt(t *testing.T) {
	ctx := context.Background()
	svc := message.NewMessageService(testutil.NewTestRepos(t), nil, message.Options{})

	msg, err := svc.Send(ctx, "u1", "ch-1", request.SendMessageRequest{Content: strPtr("hello")})
	if err != nil {
		t.Fatal(err)
	}
	edited, err := svc.Edit(ctx, "u2", msg.ID, request.EditMessageRequest{Content: strPtr("bye")})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Content != "bye" || edited.EditedAt == nil {
		t.Fatalf("unexpected edit %+v", edited)
	}
	if _, err := svc.Edit(ctx, "u1", "msg-missing", request.EditMessageRequest{Content: strPtr("x")}); !errorx.IsNotFound(err) {
		t.Fatalf("missing message: %v", err)
	}
}

func TestReactionsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	broker := &testutil.RecordingBroker{}
	svc := message.NewMessageService(repos, broker, message.Options{})

	first, err := svc.AddReaction(ctx, "u1", "msg-1", request.AddReactionRequest{Emoji: "👍"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.AddReaction(ctx, "u1", "msg-1", request.AddReactionRequest{Emoji: "👍"})
	if err != nil || second.ID != first.ID {
		t.Fatalf("second add: %+v %v", second, err)
	}
	if n := len(broker.Events()); n != 1 {
		t.Fatalf("published %d reaction events, want 1", n)
	}

	list, _ := svc.ListReactions(ctx, "msg-1")
	if len(list) != 1 {
		t.Fatalf("reactions = %d", len(list))
	}
	if err := svc.RemoveReaction(ctx, "u1", "msg-1", "👍"); err != nil {
		t.Fatal(err)
	}
	list, _ = svc.ListReactions(ctx, "msg-1")
	if len(list) != 0 {
		t.Fatalf("reaction not removed: %+v", list)
	}
}

func TestPostAsBotPublishes(t *testing.T) {
	ctx := context.Background()
	broker := &testutil.RecordingBroker{}
	svc := message.NewMessageService(testutil.NewTestRepos(t), broker, message.Options{})

	reply := "msg-1"
	msg, err := svc.PostAsBot(ctx, "system", "ch-1", "pong", &reply)
	if err != nil {
		t.Fatal(err)
	}
	if msg.AuthorID != "system" || msg.ReplyToID == nil || *msg.ReplyToID != "msg-1" {
		t.Fatalf("unexpected bot message %+v", msg)
	}
	if len(broker.Events()) != 1 {
		t.Fatal("bot message not published")
	}
}
