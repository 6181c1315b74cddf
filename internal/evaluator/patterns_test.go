package evaluator

import "testing"

func findPattern(t *testing.T, name string) queryPattern {
	t.Helper()
	for _, p := range queryPatterns {
		if p.name == name {
			return p
		}
	}
	t.Fatalf("pattern %s not in catalog", name)
	return queryPattern{}
}

func TestSelfComparisonOperatorStyle(t *testing.T) {
	p := findPattern(t, "self_comparison")

	cases := []struct {
		query string
		want  bool
	}{
		{"db.users.find(user_id != user_id)", true},
		{"db.users.find(score >= score)", true},
		{"db.users.find(A == a)", true}, // case-insensitive
		{"db.users.find(user_id != account_id)", false},
		{"db.users.find(score > 10)", false},
	}
	for _, c := range cases {
		if got := p.match(c.query); got != c.want {
			t.Fatalf("%q: expected %v, got %v", c.query, c.want, got)
		}
	}
}

func TestSelfComparisonMongoOperatorStyle(t *testing.T) {
	p := findPattern(t, "self_comparison")

	cases := []struct {
		query string
		want  bool
	}{
		{"db.users.find({'user_id': {'$ne': '$user_id'}})", true},
		{`db.users.find({"total": {"$eq": "$total"}})`, true},
		{"db.users.find({'score': {'$gt': '$score'}})", true},
		{"db.users.find({'user_id': {'$ne': '$account_id'}})", false},
		{"db.users.find({'user_id': {'$ne': 'literal'}})", false},
	}
	for _, c := range cases {
		if got := p.match(c.query); got != c.want {
			t.Fatalf("%q: expected %v, got %v", c.query, c.want, got)
		}
	}
}

func TestZeroCountWithExists(t *testing.T) {
	p := findPattern(t, "zero_count_with_exists")

	if !p.match("count == 0 AND exists") {
		t.Fatal("expected contradiction to match")
	}
	if !p.match("COUNT(x) == 0 and field exists") {
		t.Fatal("expected case-insensitive match")
	}
	if p.match("count == 0") {
		t.Fatal("count alone should not match")
	}
	if p.match("exists AND count == 0") {
		t.Fatal("order matters: exists before count should not match")
	}
}

func TestImplausibleThreshold(t *testing.T) {
	p := findPattern(t, "implausible_threshold")

	if !p.match("db.orders.find({amount: {x > 123456789}})") {
		t.Fatal("expected 9-digit threshold to match")
	}
	if !p.match("value > 999999999999") {
		t.Fatal("expected longer literal to match")
	}
	if p.match("value > 12345678") {
		t.Fatal("8 digits should not match")
	}
	if p.match("value < 123456789") {
		t.Fatal("less-than comparison should not match")
	}
}

func TestEmptyMatchClause(t *testing.T) {
	p := findPattern(t, "empty_match_clause")

	if !p.match("db.users.aggregate([{'$match': {}}])") {
		t.Fatal("expected empty match to match")
	}
	if !p.match("db.users.aggregate([{'$match': { }}])") {
		t.Fatal("expected whitespace-only body to match")
	}
	if p.match("db.users.aggregate([{'$match': {'a': 1}}])") {
		t.Fatal("non-empty match should not match")
	}
}

func TestDuplicateGroupKey(t *testing.T) {
	p := findPattern(t, "duplicate_group_key")

	if !p.match("db.users.aggregate([{'$group': {'_id': '$_id'}}])") {
		t.Fatal("expected duplicate group key to match")
	}
	if p.match("db.users.aggregate([{'$group': {'_id': '$user'}}])") {
		t.Fatal("single _id should not match")
	}
	if p.match("db.users.find({'_id': '$_id'})") {
		t.Fatal("no $group clause should not match")
	}
}

func TestCatalogCleanQueries(t *testing.T) {
	clean := []string{
		"db.sessions.aggregate([{'$group': {'_key': '$user'}}, {'$match': {'d': 1}}])",
		"db.care_313.find({'message': 'Received retrieval request'})",
		"db.orders.aggregate([{'$match': {'date': {'$gte': '2025-01'}}}])",
	}
	for _, q := range clean {
		if matchesCatalog(q) {
			t.Fatalf("clean query flagged: %q", q)
		}
	}
}
