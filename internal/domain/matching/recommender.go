package matching

import (
	"errors"
	"sort"
	"strings"

	"career-connector/internal/domain/catalog"
)

const DefaultLimit = 5

var (
	ErrEmptyQuery   = errors.New("empty skill query")
	ErrEmptyCatalog = errors.New("empty job catalog")
)

type Recommendation struct {
	Entry catalog.Entry
	Score int
}

// SkillSet splits a comma-separated skill string into trimmed, lower-cased,
// non-empty tokens. Duplicates collapse.
func SkillSet(raw string) map[string]struct{} {
	parts := strings.Split(raw, ",")
	out := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out[p] = struct{}{}
	}
	return out
}

// Overlap returns |query ∩ SkillSet(skills)|.
func Overlap(query map[string]struct{}, skills string) int {
	n := 0
	for s := range SkillSet(skills) {
		if _, ok := query[s]; ok {
			n++
		}
	}
	return n
}

// Recommend ranks catalog entries by skill overlap with studentSkills and
// returns at most limit of them (DefaultLimit when limit <= 0). Entries with
// no overlap are dropped; equal scores keep catalog order. entries is not
// modified. An empty, nil-error result means nothing matched.
func Recommend(studentSkills string, entries []catalog.Entry, limit int) ([]Recommendation, error) {
	query := SkillSet(studentSkills)
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Recommendation, 0)
	for _, e := range entries {
		score := Overlap(query, e.Skills)
		if score <= 0 {
			continue
		}
		out = append(out, Recommendation{Entry: e, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
