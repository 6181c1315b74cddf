package evaluator

// #region imports
import (
	"regexp"
	"strings"
)

// #endregion

// #region pattern-type

// queryPattern pairs a name with a matcher so the catalog can be extended
// and tested entry by entry. Matchers receive the raw query string.
type queryPattern struct {
	name  string
	match func(query string) bool
}

func regexPattern(name, expr string) queryPattern {
	re := regexp.MustCompile(expr)
	return queryPattern{name: name, match: re.MatchString}
}

// #endregion pattern-type

// #region self-comparison

// Operator-style self comparison: "field != field", "x >= x".
var operatorCompareRe = regexp.MustCompile(`(?i)([a-z_][a-z0-9_]*)\s*(?:!=|==|<=|>=|<|>)\s*([a-z_][a-z0-9_]*)\b`)

// MongoDB operator-document self comparison: 'field': {'$ne': '$field'}.
var mongoCompareRe = regexp.MustCompile(`(?i)['"]([a-z0-9_.]+)['"]\s*:\s*\{\s*['"]\$(?:ne|eq|gt|gte|lt|lte)['"]\s*:\s*['"]\$([a-z0-9_.]+)['"]`)

// isSelfComparison flags a field compared against itself. Go's regexp has
// no backreferences, so both forms capture two groups and compare them.
func isSelfComparison(query string) bool {
	for _, m := range operatorCompareRe.FindAllStringSubmatch(query, -1) {
		if strings.EqualFold(m[1], m[2]) {
			return true
		}
	}
	for _, m := range mongoCompareRe.FindAllStringSubmatch(query, -1) {
		if strings.EqualFold(m[1], m[2]) {
			return true
		}
	}
	return false
}

// #endregion self-comparison

// #region catalog

// queryPatterns is the fixed catalog of suspicious query shapes. Each
// entry flags a query as semantically erroneous on its own.
var queryPatterns = []queryPattern{
	{name: "self_comparison", match: isSelfComparison},
	regexPattern("zero_count_with_exists", `(?i)count.*==.*0.*and.*exists`),
	regexPattern("implausible_threshold", `>\s*[0-9]{9,}`),
	regexPattern("empty_match_clause", `(?i)\$match.*\{\s*\}`),
	regexPattern("duplicate_group_key", `(?i)\$group.*_id.*_id`),
}

func matchesCatalog(query string) bool {
	for _, p := range queryPatterns {
		if p.match(query) {
			return true
		}
	}
	return false
}

// #endregion catalog

// #region mismatch-keywords

// rateKeywords mark a question as asking for a percentage-like figure.
// Includes the Korean equivalents used by the analysis frontends.
var rateKeywords = []string{"비율", "율", "percent", "rate"}

// rateFieldKeywords mark a result field name as a percentage-like figure.
var rateFieldKeywords = []string{"rate", "ratio", "비율", "율"}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion mismatch-keywords
