package crous

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"crousmenu/internal/httpclient"
)

// Fetcher is the transport the Service reads through; *httpclient.Client
// satisfies it.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, v any) error
}

type Service struct {
	f Fetcher
}

func NewService(f Fetcher) *Service {
	return &Service{f: f}
}

func (s *Service) ListRegions(ctx context.Context) ([]Region, error) {
	var out []Region
	if err := s.f.GetJSON(ctx, "/regions", &out); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return out, nil
}

func (s *Service) ListRestaurants(ctx context.Context, regionCode int) ([]Restaurant, error) {
	var out []Restaurant
	if err := s.f.GetJSON(ctx, fmt.Sprintf("/regions/%d/restaurants", regionCode), &out); err != nil {
		return nil, fmt.Errorf("list restaurants of region %d: %w", regionCode, err)
	}
	return out, nil
}

// SearchRestaurants fetches every restaurant and keeps those whose name
// contains name, ignoring case. The result is never nil; when the list cannot
// be fetched it is empty and the error says why.
func (s *Service) SearchRestaurants(ctx context.Context, name string) ([]Restaurant, error) {
	var all []Restaurant
	if err := s.f.GetJSON(ctx, "/restaurants", &all); err != nil {
		return []Restaurant{}, fmt.Errorf("search restaurants: %w", err)
	}
	return FilterByName(all, name), nil
}

func FilterByName(rs []Restaurant, substr string) []Restaurant {
	needle := strings.ToLower(substr)
	out := make([]Restaurant, 0, len(rs))
	for _, r := range rs {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// GetRestaurant returns nil, nil when the API answers with a null or empty payload.
func (s *Service) GetRestaurant(ctx context.Context, code int) (*Restaurant, error) {
	var r Restaurant
	ok, err := s.getObject(ctx, fmt.Sprintf("/restaurants/%d", code), &r)
	if err != nil {
		return nil, fmt.Errorf("get restaurant %d: %w", code, err)
	}
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// GetMenu returns the menus from today onward, in API order.
func (s *Service) GetMenu(ctx context.Context, code int) ([]Menu, error) {
	var out []Menu
	if err := s.f.GetJSON(ctx, fmt.Sprintf("/restaurants/%d/menu", code), &out); err != nil {
		return nil, fmt.Errorf("get menu of restaurant %d: %w", code, err)
	}
	return out, nil
}

// GetMenuForDate returns the menu of one day; date is passed to the API as given.
// A null or empty payload gives nil, nil.
func (s *Service) GetMenuForDate(ctx context.Context, code int, date string) (*Menu, error) {
	var m Menu
	ok, err := s.getObject(ctx, fmt.Sprintf("/restaurants/%d/menu/%s", code, date), &m)
	if err != nil {
		return nil, fmt.Errorf("get menu of restaurant %d on %s: %w", code, date, err)
	}
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// getObject decodes a single-object payload into v. ok is false when the
// payload is null or an empty object.
func (s *Service) getObject(ctx context.Context, path string, v any) (ok bool, err error) {
	var fields map[string]json.RawMessage
	if err := s.f.GetJSON(ctx, path, &fields); err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, httpclient.ErrNotFound
	}
	return true, nil
}
