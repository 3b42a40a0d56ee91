package crous

import (
	"strings"
	"time"
)

type Region struct {
	Code int    `json:"code"`
	Name string `json:"libelle"`
}

type Restaurant struct {
	Code    int      `json:"code"`
	Name    string   `json:"nom"`
	Open    bool     `json:"ouvert"`
	Address string   `json:"adresse,omitempty"`
	Hours   []string `json:"horaires,omitempty"`
	Region  Region   `json:"region"`
}

// Menu is everything served by one restaurant on one date.
type Menu struct {
	Date  string `json:"date"`
	Meals []Meal `json:"repas"`
}

type Meal struct {
	Type       string     `json:"type"`
	Categories []Category `json:"categories"`
}

type Category struct {
	Label  string `json:"libelle"`
	Dishes []Dish `json:"plats"`
}

type Dish struct {
	Label string `json:"libelle"`
}

const (
	apiDateLayout     = "2006-01-02"
	displayDateLayout = "02-01-2006"
)

// DisplayDate returns the menu date as DD-MM-YYYY. Dates the API sends in
// another form are returned untouched.
func (m Menu) DisplayDate() string {
	d := strings.TrimSpace(m.Date)
	if t, err := time.Parse(apiDateLayout, d); err == nil {
		return t.Format(displayDateLayout)
	}
	return d
}

func ValidDate(s string) bool {
	_, err := time.Parse(displayDateLayout, s)
	return err == nil
}

var placeholderDishes = map[string]bool{
	"":      true,
	"--":    true,
	"Fermé": true,
}

// IsPlaceholder reports whether the dish stands for "nothing served".
func (d Dish) IsPlaceholder() bool {
	return placeholderDishes[strings.TrimSpace(d.Label)]
}

// VisibleDishes returns the real dishes of c, trimmed, in source order.
func (c Category) VisibleDishes() []string {
	out := make([]string, 0, len(c.Dishes))
	for _, d := range c.Dishes {
		if d.IsPlaceholder() {
			continue
		}
		out = append(out, strings.TrimSpace(d.Label))
	}
	return out
}
