package envfile

import (
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	env, err := Parse("AIRFLOW_EXTRAS=mysql,postgres\n\n# comment\nexport AIRFLOW_USE_UV=true\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if env["AIRFLOW_EXTRAS"] != "mysql,postgres" {
		t.Fatalf("unexpected extras: %q", env["AIRFLOW_EXTRAS"])
	}
	if env["AIRFLOW_USE_UV"] != "true" {
		t.Fatalf("expected export prefix to be stripped, got %q", env["AIRFLOW_USE_UV"])
	}
}

func TestParseQuotedValues(t *testing.T) {
	content := `A="with space"  # trailing comment
B='single # not a comment'
C="escaped \"quote\" and \n newline"
`
	env, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if env["A"] != "with space" {
		t.Fatalf("A = %q", env["A"])
	}
	if env["B"] != "single # not a comment" {
		t.Fatalf("B = %q", env["B"])
	}
	if env["C"] != "escaped \"quote\" and \n newline" {
		t.Fatalf("C = %q", env["C"])
	}
}

func TestParseEmptyContent(t *testing.T) {
	env, err := Parse("")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(env) != 0 {
		t.Fatalf("expected empty map, got %v", env)
	}
}

func TestParseInvalidLine(t *testing.T) {
	_, err := Parse("JUSTAKEY\n")
	if err == nil {
		t.Fatal("expected error for line without =")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse(`A="never closed`)
	if err == nil {
		t.Fatal("expected error for unterminated quote")
	}
}

func TestParseTrailingGarbageAfterQuote(t *testing.T) {
	_, err := Parse(`A="closed" garbage`)
	if err == nil {
		t.Fatal("expected error for trailing content after quoted value")
	}
}
