// Package strutil holds small string helpers shared by the diff tooling:
// human-readable counts, SQL LIKE matching over identifier lists, and
// output-name templating.
package strutil

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var millnames = []string{"", "k", "m", "b"}

// NumberToHuman renders n with a thousands-magnitude suffix: 1234 becomes
// "1k", 5400000000 becomes "5b".
func NumberToHuman(n int64) string {
	f := float64(n)
	idx := 0
	if f != 0 {
		idx = int(math.Floor(math.Log10(math.Abs(f)) / 3))
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(millnames)-1 {
		idx = len(millnames) - 1
	}
	return fmt.Sprintf("%.0f%s", f/math.Pow(10, float64(3*idx)), millnames[idx])
}

// MatchLike filters names by a SQL LIKE pattern, where % matches any run of
// characters and ? matches a single character.
func MatchLike(pattern string, names []string) ([]string, error) {
	expr := strings.ReplaceAll(pattern, "%", ".*")
	expr = strings.ReplaceAll(expr, "?", ".")
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("strutil: bad LIKE pattern %q: %v", pattern, err)
	}
	var out []string
	for _, s := range names {
		if re.MatchString(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// EvalNameTemplate substitutes every %t in name with the current local
// timestamp, rendered filesystem-safe (colons become underscores).
func EvalNameTemplate(name string) string {
	ts := time.Now().Format("2006-01-02_15_04_05")
	return strings.ReplaceAll(name, "%t", ts)
}
