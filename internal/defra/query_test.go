package defra

import (
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	valid := []string{
		"bae-f4a2c5e1-9b3d-4c7e-8f1a-2b3c4d5e6f7a",
		"draft-1",
		"abc_DEF-123",
	}
	for _, id := range valid {
		if err := ValidateID(id); err != nil {
			t.Errorf("ValidateID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{
		"",
		`x") { _docID } }`,
		"id with spaces",
		"id$var",
		strings.Repeat("a", 501),
	}
	for _, id := range invalid {
		if err := ValidateID(id); err == nil {
			t.Errorf("ValidateID(%q) = nil, want error", id)
		}
	}
}

func TestQueryBuilderBuild(t *testing.T) {
	query, vars := NewQuery("Draft").
		Filter("status", "pending").
		Fields("_docID", "content", "platform").
		Build()

	want := `query($v0: String) { Draft(filter: {status: {_eq: $v0}}) { _docID content platform } }`
	if query != want {
		t.Errorf("query = %q\nwant    %q", query, want)
	}
	if vars["v0"] != "pending" {
		t.Errorf("vars = %v", vars)
	}
}

func TestQueryBuilderNoFilter(t *testing.T) {
	query, vars := NewQuery("Prompt").
		Fields("_docID", "content", "created_at").
		Build()

	want := `{ Prompt { _docID content created_at } }`
	if query != want {
		t.Errorf("query = %q", query)
	}
	if len(vars) != 0 {
		t.Errorf("vars = %v, want empty", vars)
	}
}

func TestQueryBuilderOrderLimitOffset(t *testing.T) {
	query, _ := NewQuery("Prompt").
		OrderBy("created_at", "DESC").
		Limit(10).
		Offset(20).
		Build()

	for _, part := range []string{"order: {created_at: DESC}", "limit: 10", "offset: 20"} {
		if !strings.Contains(query, part) {
			t.Errorf("query %q missing %q", query, part)
		}
	}
}

func TestInferGraphQLType(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"s", "String"},
		{42, "Int"},
		{3.14, "Float"},
		{true, "Boolean"},
		{nil, "String"},
	}
	for _, tt := range tests {
		if got := inferGraphQLType(tt.value); got != tt.want {
			t.Errorf("inferGraphQLType(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
