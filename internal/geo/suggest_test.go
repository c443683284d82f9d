package geo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/model"
)

type fakeAutocomplete struct {
	items []model.AddressSuggestion
	err   error
}

func (f fakeAutocomplete) Autocomplete(context.Context, string) ([]model.AddressSuggestion, error) {
	return f.items, f.err
}

func TestSuggestShortQuery(t *testing.T) {
	s := NewSuggester(fakeAutocomplete{err: errors.New("must not be called")}, zerolog.Nop())
	got := s.Suggest(context.Background(), " R ")
	if len(got.Items) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
}

func TestSuggestLiveIsCapped(t *testing.T) {
	items := make([]model.AddressSuggestion, 8)
	s := NewSuggester(fakeAutocomplete{items: items}, zerolog.Nop())
	got := s.Suggest(context.Background(), "Rua Augusta")
	if got.Source != model.DataSourceLive || len(got.Items) != MaxSuggestions {
		t.Fatalf("unexpected suggestions %+v", got)
	}
}

func TestSuggestFallback(t *testing.T) {
	for name, lookup := range map[string]AutocompleteLookup{
		"failure":        fakeAutocomplete{err: errors.New("quota exceeded")},
		"not configured": nil,
	} {
		t.Run(name, func(t *testing.T) {
			s := NewSuggester(lookup, zerolog.Nop())
			got := s.Suggest(context.Background(), "Rua Augusta 10")
			if got.Source != model.DataSourceSimulated {
				t.Fatalf("expected simulated source, got %s", got.Source)
			}
			if len(got.Items) != MaxSuggestions {
				t.Fatalf("expected %d suggestions, got %d", MaxSuggestions, len(got.Items))
			}
			for _, item := range got.Items {
				if !strings.Contains(item.Description, "Rua Augusta 10") {
					t.Fatalf("suggestion %q does not contain the query", item.Description)
				}
			}
			if got.Items[0].SecondaryText != "São Paulo, SP" {
				t.Fatalf("unexpected first city %q", got.Items[0].SecondaryText)
			}
		})
	}
}
