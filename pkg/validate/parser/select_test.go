package parser

import "testing"

func TestParseSelect_Wildcard(t *testing.T) {
	assertValid(t, "SELECT * FROM users;")
}

func TestParseSelect_FieldList(t *testing.T) {
	assertValid(t, "SELECT name FROM users;")
	assertValid(t, "SELECT name, age, email FROM users;")
	assertValid(t, "SELECT u.name, o.total FROM users u, orders o;")
}

func TestParseSelect_Aliases(t *testing.T) {
	assertValid(t, "SELECT name AS n FROM users;")
	assertValid(t, "SELECT name n FROM users;")
	assertValid(t, "SELECT name FROM users AS u;")
	assertValid(t, "SELECT name FROM users u;")
}

func TestParseSelect_AggregateFunctions(t *testing.T) {
	assertValid(t, "SELECT COUNT(*) FROM users;")
	assertValid(t, "SELECT COUNT(id) FROM users;")
	assertValid(t, "SELECT SUM(o.total) FROM orders o;")
	assertValid(t, "SELECT COUNT(*) AS total FROM users;")
	assertValid(t, "SELECT MIN(age), MAX(age), AVG(age) FROM users;")
}

func TestParseSelect_WhereClause(t *testing.T) {
	assertValid(t, "SELECT name FROM users WHERE age > 25;")
	assertValid(t, "SELECT name FROM users WHERE age >= 18 AND age <= 65;")
	assertValid(t, "SELECT name FROM users WHERE name = 'Alice' OR name = 'Bob';")
	assertValid(t, "SELECT name FROM users u WHERE u.id = o.user_id;")
}

func TestParseSelect_OptionalClauses(t *testing.T) {
	assertValid(t, "SELECT name FROM users GROUP BY name;")
	assertValid(t, "SELECT name FROM users GROUP BY u.name;")
	assertValid(t, "SELECT name FROM users ORDER BY name;")
	assertValid(t, "SELECT name FROM users LIMIT 10;")
	assertValid(t, "SELECT u.name, COUNT(*) AS total FROM users u WHERE u.age > 25 GROUP BY u.name ORDER BY total LIMIT 10;")
}

func TestParseSelect_ClauseOrderIsNotEnforced(t *testing.T) {
	// The optional-clause loop dispatches on the current keyword and does
	// not require the canonical WHERE, GROUP BY, ORDER BY, LIMIT order.
	assertValid(t, "SELECT name FROM users LIMIT 10 WHERE age > 5;")
	assertValid(t, "SELECT name FROM users ORDER BY name GROUP BY name;")
	assertValid(t, "SELECT name FROM users LIMIT 5 LIMIT 10;")
}

func TestParseSelect_CaseInsensitive(t *testing.T) {
	assertValid(t, "select * from t;")
	assertValid(t, "SeLeCt NaMe FrOm UsErS wHeRe AgE > 1;")
}

func TestParseSelect_Errors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"trailing comma in select list", "SELECT name, FROM users;"},
		{"missing FROM", "SELECT name users;"},
		{"missing table", "SELECT name FROM;"},
		{"missing select list", "SELECT FROM users;"},
		{"unclosed aggregate", "SELECT COUNT(id FROM users;"},
		{"empty aggregate", "SELECT COUNT() FROM users;"},
		{"keyword as alias", "SELECT name AS FROM users;"},
		{"GROUP without BY", "SELECT name FROM users GROUP name;"},
		{"ORDER without BY", "SELECT name FROM users ORDER name;"},
		{"LIMIT without value", "SELECT name FROM users LIMIT;"},
		{"dangling AND", "SELECT name FROM users WHERE a = 1 AND;"},
		{"comparison without operator", "SELECT name FROM users WHERE a 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSyntaxError(t, tt.sql)
		})
	}
}
