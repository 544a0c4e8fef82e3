package random

import (
	"regexp"
	"testing"
)

func TestNewIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^com-[0-9a-f]{32}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID(PrefixCommunity)
		if !re.MatchString(id) {
			t.Fatalf("unexpected id format %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestInviteCode(t *testing.T) {
	re := regexp.MustCompile(`^[a-zA-Z0-9]{8}$`)
	a, b := InviteCode(8), InviteCode(8)
	if !re.MatchString(a) || !re.MatchString(b) {
		t.Fatalf("bad codes %q %q", a, b)
	}
	if a == b {
		t.Fatalf("two codes collided: %q", a)
	}
}
