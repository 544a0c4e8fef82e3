package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidParam, http.StatusBadRequest},
		{ErrInviteExpired, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{Newf(CodeNotFound, "%s not found", "Channel"), http.StatusNotFound},
		{Wrap(errors.New("conn refused"), CodeDBError, "create message"), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestIsMatchesPredefined(t *testing.T) {
	wrapped := fmt.Errorf("join: %w", ErrInviteExhausted)
	if !errors.Is(wrapped, ErrInviteExhausted) {
		t.Fatal("wrapped exhausted error should match")
	}
	if errors.Is(wrapped, ErrInviteExpired) {
		t.Fatal("exhausted must not match expired")
	}
	if got := Message(wrapped); got != "Invite exhausted" {
		t.Fatalf("Message = %q", got)
	}
}

func TestMessageHidesCause(t *testing.T) {
	err := Wrap(errors.New("dial tcp: refused"), CodeDBError, "list channels")
	if got := Message(err); got != "list channels" {
		t.Fatalf("Message = %q", got)
	}
	if !IsNotFound(Newf(CodeNotFound, "Role not found")) {
		t.Fatal("IsNotFound should be true")
	}
}
