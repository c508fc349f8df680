package enhance

import (
	"context"
	"strings"
)

// expansions maps common recruiter shorthand to longer search-friendly
// forms. Matching is per-token and case-insensitive.
var expansions = map[string][]string{
	"ml":         {"machine learning"},
	"ai":         {"artificial intelligence"},
	"dl":         {"deep learning"},
	"nlp":        {"natural language processing"},
	"js":         {"javascript"},
	"ts":         {"typescript"},
	"py":         {"python"},
	"k8s":        {"kubernetes"},
	"aws":        {"amazon web services"},
	"gcp":        {"google cloud platform"},
	"db":         {"database"},
	"qa":         {"quality assurance", "testing"},
	"sre":        {"site reliability engineer"},
	"devops":     {"ci/cd", "infrastructure"},
	"backend":    {"server side", "api development"},
	"frontend":   {"ui development", "web interface"},
	"fullstack":  {"frontend and backend"},
	"dba":        {"database administrator"},
	"ui":         {"user interface"},
	"ux":         {"user experience"},
	"api":        {"rest api"},
	"cv":         {"computer vision"},
	"sde":        {"software development engineer"},
	"swe":        {"software engineer"},
	"oop":        {"object oriented programming"},
	"tdd":        {"test driven development"},
	"etl":        {"data pipeline"},
	"bi":         {"business intelligence"},
	"infra":      {"infrastructure"},
	"microservices": {"distributed systems"},
}

// LocalEnhancer expands abbreviations and adds synonyms from a built-in
// table. It is deterministic and performs no I/O, making it a safe default
// when no remote strategy is configured.
type LocalEnhancer struct {
	table map[string][]string
}

// NewLocalEnhancer creates the local dictionary-based enhancement strategy.
func NewLocalEnhancer() *LocalEnhancer {
	return &LocalEnhancer{table: expansions}
}

// Enhance appends expansions for every recognized token to the query.
// Unrecognized queries are returned unchanged.
func (e *LocalEnhancer) Enhance(_ context.Context, query string) (string, error) {
	var added []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(query)) {
		token = strings.Trim(token, ".,;:()")
		for _, expansion := range e.table[token] {
			if seen[expansion] || strings.Contains(strings.ToLower(query), expansion) {
				continue
			}
			seen[expansion] = true
			added = append(added, expansion)
		}
	}

	if len(added) == 0 {
		return query, nil
	}
	return query + " " + strings.Join(added, " "), nil
}

// Strategy returns StrategyLocal.
func (e *LocalEnhancer) Strategy() Strategy {
	return StrategyLocal
}
