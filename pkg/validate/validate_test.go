package validate

import (
	"strings"
	"testing"
)

func TestValidate_ValidQueries(t *testing.T) {
	queries := []string{
		"SELECT * FROM users;",
		"SELECT u.name, COUNT(*) AS total FROM users u WHERE u.age > 25 GROUP BY u.name ORDER BY total LIMIT 10;",
		"SELECT user_id, name FROM users u, orders o WHERE u.id = o.user_id;",
		"SELECT name, age FROM users;",
		"INSERT INTO employees (id, name) VALUES (1, 'Alice');",
		"UPDATE products SET price = 1500, stock = 10 WHERE id = 5;",
		"DELETE FROM users WHERE id = 1;",
	}

	for _, q := range queries {
		out := Validate(q)
		if !out.Valid {
			t.Errorf("Validate(%q): expected success, got %s: %s", q, out.Category, out.Message)
			continue
		}
		if out.Message != SuccessMessage {
			t.Errorf("Validate(%q): unexpected message %q", q, out.Message)
		}
	}
}

func TestValidate_FailureCategories(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category Category
	}{
		{"trailing comma", "SELECT name, FROM users;", CategorySyntax},
		{"missing assignment operator", "UPDATE products SET price 1500 WHERE id = 5;", CategorySyntax},
		{"unknown character", "SELECT * FROM t WHERE c = 5$;", CategoryLexical},
		{"unknown statement", "TRUNCATE users;", CategorySyntax},
		{"trailing tokens", "SELECT * FROM users; SELECT", CategorySyntax},
		{"hash", "# not sql", CategoryLexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Validate(tt.query)
			if out.Valid {
				t.Fatalf("Validate(%q): expected failure", tt.query)
			}
			if out.Category != tt.category {
				t.Errorf("Validate(%q): expected category %s, got %s (%s)",
					tt.query, tt.category, out.Category, out.Message)
			}
			if out.Message == "" {
				t.Error("expected a non-empty failure message")
			}
		})
	}
}

func TestValidate_LexicalErrorReportsOffset(t *testing.T) {
	out := Validate("SELECT * FROM t WHERE c = 5$;")
	if out.Valid || out.Category != CategoryLexical {
		t.Fatalf("expected lexical failure, got %+v", out)
	}
	if !strings.Contains(out.Message, "position 27") {
		t.Errorf("expected message to name the offending offset, got %q", out.Message)
	}
}

func TestValidate_CaseInsensitive(t *testing.T) {
	lower := Validate("select * from t;")
	upper := Validate("SELECT * FROM T;")

	if !lower.Valid || !upper.Valid {
		t.Fatalf("expected both casings to validate, got %+v and %+v", lower, upper)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	queries := []string{
		"SELECT * FROM users;",
		"SELECT name, FROM users;",
		"SELECT 5$",
	}

	for _, q := range queries {
		first := Validate(q)
		second := Validate(q)
		if first != second {
			t.Errorf("Validate(%q): outcomes differ between calls: %+v vs %+v", q, first, second)
		}
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	// An empty query tokenizes to nothing and parses as an empty statement.
	for _, q := range []string{"", "   ", "\n\t"} {
		out := Validate(q)
		if !out.Valid {
			t.Errorf("Validate(%q): expected success, got %s: %s", q, out.Category, out.Message)
		}
	}

	// A lone semicolon is not a statement.
	if out := Validate(";"); out.Valid || out.Category != CategorySyntax {
		t.Errorf("Validate(\";\"): expected syntax failure, got %+v", out)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryLexical, "Lexical Error"},
		{CategorySyntax, "Syntax Error"},
		{CategoryInternal, "Internal Error"},
		{Category(42), "Unknown Error"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String(): expected %q, got %q", tt.category, tt.want, got)
		}
	}
}
