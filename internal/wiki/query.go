package wiki

import (
	"net/url"
	"strings"
)

// Value is one decoded occurrence of a query parameter. A bare name such as
// "?debug" has no value and is recorded with Valid false.
type Value struct {
	Text  string
	Valid bool
}

// QueryParams maps a parameter name to its occurrences in query-string order.
// Names are case-sensitive.
type QueryParams map[string][]Value

// ParseQuery decodes the part of raw after the first '?'. Everything before
// the '?' and any '#' fragment is ignored. It never fails: input without a
// query yields an empty map and escapes that cannot be decoded are kept as
// written.
func ParseQuery(raw string) QueryParams {
	params := QueryParams{}

	idx := strings.Index(raw, "?")
	if idx < 0 {
		return params
	}
	query := raw[idx+1:]
	if hash := strings.Index(query, "#"); hash >= 0 {
		query = query[:hash]
	}

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		name, text, hasValue := strings.Cut(pair, "=")
		if name == "" {
			continue
		}
		v := Value{}
		if hasValue {
			v = Value{Text: unescape(text), Valid: true}
		}
		params[name] = append(params[name], v)
	}
	return params
}

// unescape decodes %XX escapes. '+' stays a literal plus.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Get returns the first defined value of name.
func (q QueryParams) Get(name string) (string, bool) {
	for _, v := range q[name] {
		if v.Valid {
			return v.Text, true
		}
	}
	return "", false
}

// All returns every defined value of name in order.
func (q QueryParams) All(name string) []string {
	var out []string
	for _, v := range q[name] {
		if v.Valid {
			out = append(out, v.Text)
		}
	}
	return out
}

// Repeated reports whether name occurred more than once.
func (q QueryParams) Repeated(name string) bool {
	return len(q[name]) > 1
}

// ID returns the decoded id parameter, or "" when it is absent.
func (q QueryParams) ID() string {
	id, _ := q.Get("id")
	return id
}

// EntityID returns the id parameter of a page URL or query string.
func EntityID(raw string) string {
	return ParseQuery(raw).ID()
}
