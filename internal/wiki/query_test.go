package wiki

import (
	"reflect"
	"testing"
)

func TestParseQueryCollectsRepeatedNames(t *testing.T) {
	got := ParseQuery("?a=1&b=2&a=3")

	if all := got.All("a"); !reflect.DeepEqual(all, []string{"1", "3"}) {
		t.Fatalf("All(a) = %q, want [1 3]", all)
	}
	if !got.Repeated("a") {
		t.Fatalf("a should be repeated")
	}
	if v, ok := got.Get("b"); !ok || v != "2" {
		t.Fatalf("Get(b) = %q, %v, want 2, true", v, ok)
	}
	if got.Repeated("b") {
		t.Fatalf("b should be a single value")
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestParseQueryEmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "?", "object.html", "?&&", "#id=3"} {
		if got := ParseQuery(raw); len(got) != 0 {
			t.Fatalf("ParseQuery(%q) = %v, want empty", raw, got)
		}
	}
}

func TestParseQueryDecoding(t *testing.T) {
	tests := map[string]string{
		"?id=iron%20ore":           "iron ore",
		"?id=a+b":                  "a+b",
		"?id=%E2%9C%93":            "✓",
		"?id=100%":                 "100%",
		"?id=x=y":                  "x=y",
		"item.html?id=7#stats":     "7",
		"http://wiki/npc.html?id=": "",
	}

	for raw, want := range tests {
		if got := EntityID(raw); got != want {
			t.Fatalf("EntityID(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseQueryBareName(t *testing.T) {
	q := ParseQuery("?debug&id=4")

	vals, ok := q["debug"]
	if !ok || len(vals) != 1 {
		t.Fatalf("debug occurrences = %v, want one", vals)
	}
	if vals[0].Valid {
		t.Fatalf("bare name should have an undefined value")
	}
	if _, ok := q.Get("debug"); ok {
		t.Fatalf("Get(debug) should report no value")
	}
	if got := q.ID(); got != "4" {
		t.Fatalf("ID() = %q, want 4", got)
	}
}

func TestParseQueryNamesAreCaseSensitive(t *testing.T) {
	q := ParseQuery("?ID=1&id=2")
	if got := q.ID(); got != "2" {
		t.Fatalf("ID() = %q, want 2", got)
	}
	if v, _ := q.Get("ID"); v != "1" {
		t.Fatalf("Get(ID) = %q, want 1", v)
	}
}

func TestEntityIDMissing(t *testing.T) {
	for _, raw := range []string{"", "?name=axe", "?id"} {
		if got := EntityID(raw); got != "" {
			t.Fatalf("EntityID(%q) = %q, want empty", raw, got)
		}
	}
}

func TestEntityIDRepeatedUsesFirst(t *testing.T) {
	if got := EntityID("?id=5&id=6"); got != "5" {
		t.Fatalf("EntityID() = %q, want 5", got)
	}
}
