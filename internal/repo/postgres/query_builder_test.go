package postgres

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

func TestLikeEscape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}
	for _, tc := range cases {
		if got := likeEscape(tc.in); got != tc.want {
			t.Fatalf("likeEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCondBuilder_ContainsEscapesPattern(t *testing.T) {
	var b condBuilder
	b.addContains("name", "100%")
	b.addPrefix("phone", "+1_2")

	if len(b.args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(b.args))
	}
	if b.args[0] != `100\%` || b.args[1] != `+1\_2` {
		t.Fatalf("unexpected args: %v", b.args)
	}
	if b.conds[0] != `name ILIKE '%' || $1 || '%'` {
		t.Fatalf("unexpected cond: %s", b.conds[0])
	}
	if b.conds[1] != `phone LIKE $2 || '%'` {
		t.Fatalf("unexpected cond: %s", b.conds[1])
	}
}

func TestBuildOrderBy_UnknownField(t *testing.T) {
	allowed := map[string]string{"name": "name"}
	if _, err := buildOrderBy([]string{"-bogus"}, allowed, "name ASC"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
