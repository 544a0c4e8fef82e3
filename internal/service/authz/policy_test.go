package authz

import (
	"errors"
	"testing"

	"kama_community_server/pkg/errorx"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		resource Resource
		action   Action
		want     Requirement
	}{
		{Community, Create, Authenticated},
		{Community, Get, Public},
		{Community, Update, Owner},
		{Community, Delete, Owner},
		{Channel, Update, Public},
		{Channel, Delete, Public},
		{Message, Create, Authenticated},
		{Message, Delete, Public},
		{Member, Delete, Public},
		{Role, Create, Public},
		{Invite, Create, Public},
		{Invite, Join, Authenticated},
	}
	for _, c := range cases {
		if got := Lookup(c.resource, c.action); got != c.want {
			t.Errorf("Lookup(%s, %s) = %d, want %d", c.resource, c.action, got, c.want)
		}
	}
}

func TestAuthorize(t *testing.T) {
	if err := Authorize(Community, Update, "u1", "u1"); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	if err := Authorize(Community, Update, "u2", "u1"); !errors.Is(err, errorx.ErrForbidden) {
		t.Fatalf("non-owner: %v", err)
	}
	if err := Authorize(Community, Delete, "", "u1"); !errors.Is(err, errorx.ErrUnauthenticated) {
		t.Fatalf("anonymous: %v", err)
	}
	if err := Authorize(Role, Update, "", ""); err != nil {
		t.Fatalf("public action rejected: %v", err)
	}
}
