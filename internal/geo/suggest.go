package geo

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/model"
)

const (
	MinSuggestionQuery = 2
	MaxSuggestions     = 5
)

var fallbackCities = []string{
	"São Paulo, SP",
	"Rio de Janeiro, RJ",
	"Belo Horizonte, MG",
	"Curitiba, PR",
	"Porto Alegre, RS",
	"Salvador, BA",
	"Brasília, DF",
}

type AutocompleteLookup interface {
	Autocomplete(ctx context.Context, input string) ([]model.AddressSuggestion, error)
}

// Suggester completes partial addresses. Without a working lookup it builds
// synthetic suggestions from a fixed list of cities.
type Suggester struct {
	lookup AutocompleteLookup
	log    zerolog.Logger
}

func NewSuggester(lookup AutocompleteLookup, log zerolog.Logger) *Suggester {
	return &Suggester{lookup: lookup, log: log}
}

func (s *Suggester) Suggest(ctx context.Context, query string) model.Suggestions {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSuggestionQuery {
		return model.Suggestions{Items: []model.AddressSuggestion{}, Source: model.DataSourceLive}
	}

	if s.lookup != nil {
		items, err := s.lookup.Autocomplete(ctx, query)
		if err == nil {
			return model.Suggestions{Items: limit(items), Source: model.DataSourceLive}
		}
		s.log.Warn().Err(err).Str("query", query).Msg("address autocomplete failed, using synthetic suggestions")
	}
	return model.Suggestions{Items: syntheticSuggestions(query), Source: model.DataSourceSimulated}
}

func syntheticSuggestions(query string) []model.AddressSuggestion {
	needle := strings.ToLower(query)
	items := make([]model.AddressSuggestion, 0, MaxSuggestions)
	for i, city := range fallbackCities {
		description := query + ", " + city
		if !strings.Contains(strings.ToLower(description), needle) {
			continue
		}
		items = append(items, model.AddressSuggestion{
			ID:            fmt.Sprintf("simulated-%d", i+1),
			Description:   description,
			MainText:      query,
			SecondaryText: city,
		})
		if len(items) == MaxSuggestions {
			break
		}
	}
	return items
}

func limit(items []model.AddressSuggestion) []model.AddressSuggestion {
	if items == nil {
		return []model.AddressSuggestion{}
	}
	if len(items) > MaxSuggestions {
		return items[:MaxSuggestions]
	}
	return items
}
