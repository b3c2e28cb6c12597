package mealplan

import (
	"github.com/rs/zerolog"

	"nutriflow/internal/domain"
)

// PoolFilters narrow the catalog before selection.
type PoolFilters struct {
	MaxPrepTime *int
	Tags        []string
	Cuisines    []string
}

// BuildPool applies prep time, tag and cuisine filters in that order. A filter
// whose result is empty is skipped, and an empty final pool falls back to the
// full catalog.
func BuildPool(catalog []domain.Recipe, f PoolFilters, logger zerolog.Logger) []domain.Recipe {
	pool := catalog

	if f.MaxPrepTime != nil {
		limit := *f.MaxPrepTime
		pool = narrow(pool, func(r domain.Recipe) bool {
			return r.PrepTime != nil && *r.PrepTime <= limit
		}, func() {
			logger.Warn().Int("max_prep_time", limit).Msg("no recipes under max prep time, filter skipped")
		})
	}

	if tags := domain.NormalizeLabels(f.Tags); len(tags) > 0 {
		pool = narrow(pool, func(r domain.Recipe) bool {
			return anyMatch(r.Tags, tags)
		}, func() {
			logger.Warn().Strs("tags", tags).Msg("no recipes match tags, filter skipped")
		})
	}

	if cuisines := domain.NormalizeLabels(f.Cuisines); len(cuisines) > 0 {
		pool = narrow(pool, func(r domain.Recipe) bool {
			return anyMatch(r.Cuisines, cuisines)
		}, func() {
			logger.Warn().Strs("cuisines", cuisines).Msg("no recipes match cuisines, filter skipped")
		})
	}

	if len(pool) == 0 {
		logger.Warn().Msg("eligible pool empty, using full catalog")
		return catalog
	}
	return pool
}

func narrow(in []domain.Recipe, keep func(domain.Recipe) bool, onEmpty func()) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(in))
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		onEmpty()
		return in
	}
	return out
}

// anyMatch reports whether any recipe label folds to one of wanted.
func anyMatch(labels []string, wanted []string) bool {
	for _, l := range labels {
		l = domain.NormalizeLabel(l)
		for _, w := range wanted {
			if l == w {
				return true
			}
		}
	}
	return false
}
