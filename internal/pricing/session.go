package pricing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
)

var (
	ErrUnknownField    = errors.New("unknown editable field")
	ErrEditNotOpen     = errors.New("field is not in edit mode")
	ErrSessionNotFound = errors.New("quote session not found")
)

// Field names a breakdown input that can be overridden for one quote.
type Field string

const (
	FieldTollTotal         Field = "toll_total"
	FieldFuelPrice         Field = "fuel_price"
	FieldFuelConsumption   Field = "fuel_consumption"
	FieldVehicleMargin     Field = "vehicle_margin"
	FieldLaborMargin       Field = "labor_margin"
	FieldMealMargin        Field = "meal_margin"
	FieldBreakfastPrice    Field = "breakfast_price"
	FieldBreakfastQuantity Field = "breakfast_quantity"
	FieldLunchPrice        Field = "lunch_price"
	FieldLunchQuantity     Field = "lunch_quantity"
	FieldDinnerPrice       Field = "dinner_price"
	FieldDinnerQuantity    Field = "dinner_quantity"
)

var editableFields = map[Field]struct{}{
	FieldTollTotal:         {},
	FieldFuelPrice:         {},
	FieldFuelConsumption:   {},
	FieldVehicleMargin:     {},
	FieldLaborMargin:       {},
	FieldMealMargin:        {},
	FieldBreakfastPrice:    {},
	FieldBreakfastQuantity: {},
	FieldLunchPrice:        {},
	FieldLunchQuantity:     {},
	FieldDinnerPrice:       {},
	FieldDinnerQuantity:    {},
}

func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := editableFields[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return f, nil
}

// Session is the state of one quote while it is being edited. Overrides live
// only here and never reach the stored vehicle profile.
type Session struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Label     string
	Route     model.Route
	CreatedAt time.Time

	base      Input
	committed map[Field]float64
	drafts    map[Field]string
	touchedAt time.Time
}

func NewSession(ownerID uuid.UUID, label string, route model.Route, in Input, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Label:     label,
		Route:     route,
		CreatedAt: now,
		base:      in,
		committed: make(map[Field]float64),
		drafts:    make(map[Field]string),
		touchedAt: now,
	}
}

// Input returns the base inputs with every committed override applied.
func (s *Session) Input() Input {
	in := s.base
	for f, v := range s.committed {
		in = apply(in, f, v)
	}
	return in
}

func (s *Session) Breakdown() model.CostBreakdown {
	return Compose(s.Input())
}

// Value is the committed value of a field.
func (s *Session) Value(f Field) float64 {
	if v, ok := s.committed[f]; ok {
		return v
	}
	return read(s.base, f)
}

// OpenEdit puts a field in edit mode and returns the raw value the input is
// seeded with. Opening an already open field keeps its draft.
func (s *Session) OpenEdit(f Field) (string, error) {
	if _, ok := editableFields[f]; !ok {
		return "", ErrUnknownField
	}
	if draft, ok := s.drafts[f]; ok {
		return draft, nil
	}
	raw := FormatRaw(s.Value(f))
	s.drafts[f] = raw
	return raw, nil
}

// ConfirmEdit commits raw as the field value. An empty raw commits the seeded draft.
func (s *Session) ConfirmEdit(f Field, raw string) error {
	draft, ok := s.drafts[f]
	if !ok {
		return ErrEditNotOpen
	}
	if strings.TrimSpace(raw) == "" {
		raw = draft
	}
	s.committed[f] = nonNegative(ParseAmount(raw))
	delete(s.drafts, f)
	return nil
}

// CancelEdit leaves edit mode; the last committed value stays in effect.
func (s *Session) CancelEdit(f Field) error {
	if _, ok := editableFields[f]; !ok {
		return ErrUnknownField
	}
	delete(s.drafts, f)
	return nil
}

func (s *Session) Overrides() []string {
	return sortedKeys(s.committed)
}

func (s *Session) OpenEdits() []string {
	return sortedKeys(s.drafts)
}

func (s *Session) View() model.QuoteView {
	return model.QuoteView{
		SessionID:   s.ID,
		Label:       s.Label,
		Route:       s.route(),
		Breakdown:   s.Breakdown(),
		Overrides:   s.Overrides(),
		OpenEdits:   s.OpenEdits(),
		EmployeeSet: s.base.Employee != nil,
	}
}

// route is the resolved route as quoted. An edited toll total replaces the
// looked-up one and drops the station list, which no longer adds up to it.
func (s *Session) route() model.Route {
	route := s.Route
	v, ok := s.committed[FieldTollTotal]
	if !ok {
		return route
	}
	toll := model.TollData{TotalCost: v, Stations: []model.TollStation{}}
	if route.Toll != nil {
		toll.Route = route.Toll.Route
	}
	route.Toll = &toll
	return route
}

func read(in Input, f Field) float64 {
	switch f {
	case FieldTollTotal:
		if in.Toll == nil {
			return 0
		}
		return in.Toll.TotalCost
	case FieldFuelPrice:
		return in.Vehicle.FuelPrice
	case FieldFuelConsumption:
		return in.Vehicle.FuelConsumption
	case FieldVehicleMargin:
		return in.Margins.Vehicle
	case FieldLaborMargin:
		return in.Margins.Labor
	case FieldMealMargin:
		return in.Margins.Meal
	case FieldBreakfastPrice:
		return in.Meals.Breakfast.UnitPrice
	case FieldBreakfastQuantity:
		return in.Meals.Breakfast.Quantity
	case FieldLunchPrice:
		return in.Meals.Lunch.UnitPrice
	case FieldLunchQuantity:
		return in.Meals.Lunch.Quantity
	case FieldDinnerPrice:
		return in.Meals.Dinner.UnitPrice
	case FieldDinnerQuantity:
		return in.Meals.Dinner.Quantity
	}
	return 0
}

func apply(in Input, f Field, v float64) Input {
	switch f {
	case FieldTollTotal:
		toll := model.TollData{}
		if in.Toll != nil {
			toll = *in.Toll
		}
		toll.TotalCost = v
		in.Toll = &toll
	case FieldFuelPrice:
		in.Vehicle.FuelPrice = v
	case FieldFuelConsumption:
		in.Vehicle.FuelConsumption = v
	case FieldVehicleMargin:
		in.Margins.Vehicle = v
	case FieldLaborMargin:
		in.Margins.Labor = v
	case FieldMealMargin:
		in.Margins.Meal = v
	case FieldBreakfastPrice:
		in.Meals.Breakfast.UnitPrice = v
	case FieldBreakfastQuantity:
		in.Meals.Breakfast.Quantity = v
	case FieldLunchPrice:
		in.Meals.Lunch.UnitPrice = v
	case FieldLunchQuantity:
		in.Meals.Lunch.Quantity = v
	case FieldDinnerPrice:
		in.Meals.Dinner.UnitPrice = v
	case FieldDinnerQuantity:
		in.Meals.Dinner.Quantity = v
	}
	return in
}

func sortedKeys[V any](m map[Field]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
