package bot

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"kama_community_server/internal/model"
)

// recorder 记录机器人通过 Context 发出的消息
type recorder struct {
	mu      sync.Mutex
	sent    []string
	replies map[string]string
}

func newRecorder() *recorder {
	return &recorder{replies: make(map[string]string)}
}

func (r *recorder) context(channelID string) *Context {
	return &Context{
		ChannelID: channelID,
		SendMessage: func(_ context.Context, content string) (*model.Message, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.sent = append(r.sent, content)
			return &model.Message{ChannelID: channelID, Content: content}, nil
		},
		ReplyTo: func(_ context.Context, messageID, content string) (*model.Message, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.replies[messageID] = content
			return &model.Message{ChannelID: channelID, Content: content, ReplyToID: &messageID}, nil
		},
	}
}

func (r *recorder) reply(messageID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replies[messageID]
}

func TestRegistryOrderAndOverwrite(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		if err := reg.Register(&Bot{ID: id, Name: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := reg.Register(&Bot{ID: "a", Name: "A2"}); err != nil {
		t.Fatal(err)
	}

	var ids []string
	for _, b := range reg.Bots() {
		ids = append(ids, b.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("order = %v", ids)
	}
	if b, _ := reg.Get("a"); b.Name != "A2" {
		t.Fatalf("overwrite lost: %+v", b)
	}

	reg.Unregister("b")
	reg.Unregister("missing")
	if len(reg.Bots()) != 2 || reg.IsBot("b") {
		t.Fatalf("unregister failed: %v", reg.Bots())
	}
	if err := reg.Register(&Bot{}); !errors.Is(err, ErrEmptyBotID) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseCommand(t *testing.T) {
	name, args, ok := ParseCommand("!ping foo bar")
	if !ok || name != "ping" || !reflect.DeepEqual(args, []string{"foo", "bar"}) {
		t.Fatalf("got %q %v %v", name, args, ok)
	}
	name, args, ok = ParseCommand("!help")
	if !ok || name != "help" || len(args) != 0 {
		t.Fatalf("got %q %v %v", name, args, ok)
	}
	for _, content := range []string{"ping foo", "", "!", "hello !ping"} {
		if _, _, ok := ParseCommand(content); ok {
			t.Fatalf("%q parsed as command", content)
		}
	}
}

func TestDispatchIsolatesFailingBots(t *testing.T) {
	reg := NewRegistry()
	var mu sync.Mutex
	called := map[string]bool{}
	mark := func(k string) {
		mu.Lock()
		called[k] = true
		mu.Unlock()
	}

	_ = reg.Register(&Bot{ID: "err", OnMessage: func(context.Context, *model.Message, *Context) error {
		mark("err")
		return errors.New("broken")
	}})
	_ = reg.Register(&Bot{ID: "panic", OnMessage: func(context.Context, *model.Message, *Context) error {
		mark("panic")
		panic("boom")
	}})
	_ = reg.Register(&Bot{
		ID: "ok",
		OnMessage: func(context.Context, *model.Message, *Context) error {
			mark("ok.onMessage")
			return nil
		},
		Commands: map[string]CommandHandler{
			"ping": func(_ context.Context, _ *Context, _ *model.Message, args []string) error {
				if reflect.DeepEqual(args, []string{"foo", "bar"}) {
					mark("ok.ping")
				}
				return nil
			},
		},
	})

	d := NewDispatcher(reg, time.Second)
	d.DispatchMessage(context.Background(), &model.Message{ID: "msg-1", AuthorID: "u1", Content: "!ping foo bar"}, newRecorder().context("ch-1"))

	for _, k := range []string{"err", "panic", "ok.onMessage", "ok.ping"} {
		if !called[k] {
			t.Errorf("%s was not called", k)
		}
	}
}

func TestPlainMessageNeverRunsCommands(t *testing.T) {
	reg := NewRegistry()
	var onMessage, command int
	var mu sync.Mutex
	_ = reg.Register(&Bot{
		ID: "b",
		OnMessage: func(context.Context, *model.Message, *Context) error {
			mu.Lock()
			onMessage++
			mu.Unlock()
			return nil
		},
		Commands: map[string]CommandHandler{
			"ping": func(context.Context, *Context, *model.Message, []string) error {
				mu.Lock()
				command++
				mu.Unlock()
				return nil
			},
		},
	})

	NewDispatcher(reg, time.Second).DispatchMessage(context.Background(),
		&model.Message{ID: "msg-1", AuthorID: "u1", Content: "ping please"}, newRecorder().context("ch-1"))

	if onMessage != 1 || command != 0 {
		t.Fatalf("onMessage=%d command=%d", onMessage, command)
	}
}

func TestDispatchTimesOutSlowBot(t *testing.T) {
	reg := NewRegistry()
	release := make(chan struct{})
	defer close(release)

	var fastDone bool
	var mu sync.Mutex
	_ = reg.Register(&Bot{ID: "slow", OnMessage: func(context.Context, *model.Message, *Context) error {
		<-release
		return nil
	}})
	_ = reg.Register(&Bot{ID: "fast", OnMessage: func(context.Context, *model.Message, *Context) error {
		mu.Lock()
		fastDone = true
		mu.Unlock()
		return nil
	}})

	start := time.Now()
	NewDispatcher(reg, 50*time.Millisecond).DispatchMessage(context.Background(),
		&model.Message{ID: "msg-1", AuthorID: "u1", Content: "hi"}, newRecorder().context("ch-1"))

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("dispatch blocked for %v", elapsed)
	}
	mu.Lock()
	defer mu.Unlock()
	if !fastDone {
		t.Fatal("fast bot did not run")
	}
}

func TestBotEventsSkipOnlyTheAuthor(t *testing.T) {
	reg := NewRegistry()
	var mu sync.Mutex
	calls := map[string]int{}
	count := func(id string) MessageHandler {
		return func(context.Context, *model.Message, *Context) error {
			mu.Lock()
			calls[id]++
			mu.Unlock()
			return nil
		}
	}
	countReaction := func(id string) ReactionHandler {
		return func(context.Context, *model.Reaction, *Context) error {
			mu.Lock()
			calls[id+":reaction"]++
			mu.Unlock()
			return nil
		}
	}
	_ = reg.Register(&Bot{ID: "echo", OnMessage: count("echo"), OnReaction: countReaction("echo")})
	_ = reg.Register(&Bot{ID: "logger", OnMessage: count("logger"), OnReaction: countReaction("logger")})

	d := NewDispatcher(reg, time.Second)
	d.DispatchMessage(context.Background(), &model.Message{ID: "msg-1", AuthorID: "echo", Content: "!ping"}, newRecorder().context("ch-1"))
	d.DispatchReaction(context.Background(), &model.Reaction{MessageID: "msg-1", UserID: "echo", Emoji: "x"}, newRecorder().context("ch-1"))

	if calls["echo"] != 0 || calls["echo:reaction"] != 0 {
		t.Fatalf("bot handled its own events: %v", calls)
	}
	if calls["logger"] != 1 || calls["logger:reaction"] != 1 {
		t.Fatalf("other bot missed events: %v", calls)
	}
}

func TestDispatchJoinAndReaction(t *testing.T) {
	reg := NewRegistry()
	rec := newRecorder()
	_ = reg.Register(&Bot{
		ID: "greeter",
		OnJoin: func(ctx context.Context, m *model.Member, hc *Context) error {
			_, err := hc.SendMessage(ctx, "welcome "+m.UserID)
			return err
		},
		OnReaction: func(ctx context.Context, r *model.Reaction, hc *Context) error {
			_, err := hc.ReplyTo(ctx, r.MessageID, "thanks for "+r.Emoji)
			return err
		},
	})

	d := NewDispatcher(reg, time.Second)
	d.DispatchJoin(context.Background(), &model.Member{CommunityID: "com-1", UserID: "u2"}, rec.context("ch-1"))
	d.DispatchReaction(context.Background(), &model.Reaction{MessageID: "msg-9", UserID: "u2", Emoji: "🎉"}, rec.context("ch-1"))

	if len(rec.sent) != 1 || rec.sent[0] != "welcome u2" {
		t.Fatalf("sent = %v", rec.sent)
	}
	if rec.reply("msg-9") != "thanks for 🎉" {
		t.Fatalf("reply = %q", rec.reply("msg-9"))
	}
}

func TestSystemBot(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Register(NewSystemBot(reg))
	_ = reg.Register(&Bot{ID: "dice", Commands: map[string]CommandHandler{
		"roll": func(context.Context, *Context, *model.Message, []string) error { return nil },
	}})

	rec := newRecorder()
	d := NewDispatcher(reg, time.Second)
	d.DispatchMessage(context.Background(), &model.Message{ID: "msg-1", AuthorID: "u1", Content: "!ping"}, rec.context("ch-1"))
	d.DispatchMessage(context.Background(), &model.Message{ID: "msg-2", AuthorID: "u1", Content: "!help"}, rec.context("ch-1"))

	if rec.reply("msg-1") != "pong" {
		t.Fatalf("ping reply = %q", rec.reply("msg-1"))
	}
	help := rec.reply("msg-2")
	for _, want := range []string{"!help", "!ping", "!roll"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help %q missing %s", help, want)
		}
	}
}
