package render

import (
	"fmt"
	"io"
	"strings"

	"crousmenu/internal/crous"
)

const (
	regionsTitle    = "RÉGIONS CROUS DISPONIBLES"
	unnamedCategory = "Sans catégorie"
	mealRuleWidth   = 40
	dateRuleWidth   = 45
	openLabel       = "ouvert"
	closedLabel     = "fermé"
	listIndent      = "    "
	dishIndent      = "      - "
)

func Status(open bool) string {
	if open {
		return openLabel
	}
	return closedLabel
}

func Regions(w io.Writer, regions []crous.Region) {
	fmt.Fprintln(w)
	Box(w, Double, regionsTitle)
	fmt.Fprintln(w)
	for _, r := range regions {
		fmt.Fprintf(w, "%s[%2d] %s\n", listIndent, r.Code, r.Name)
	}
	fmt.Fprintln(w)
}

// Restaurants prints the restaurants of one region with their open status.
// The region name is taken from the first restaurant.
func Restaurants(w io.Writer, rs []crous.Restaurant) {
	region := ""
	if len(rs) > 0 {
		region = rs[0].Region.Name
	}
	fmt.Fprintln(w)
	Box(w, Double, "Restaurants - "+region)
	fmt.Fprintln(w)
	for _, r := range rs {
		fmt.Fprintf(w, "%s[%4d] %s (%s)\n", listIndent, r.Code, r.Name, Status(r.Open))
	}
	fmt.Fprintln(w)
}

func SearchResults(w io.Writer, rs []crous.Restaurant) {
	fmt.Fprintf(w, "\n%s%d résultat(s) :\n\n", indent, len(rs))
	for _, r := range rs {
		fmt.Fprintf(w, "%s[%4d] %s (%s)\n", listIndent, r.Code, r.Name, r.Region.Name)
	}
	fmt.Fprintln(w)
}

// RestaurantHeader boxes the restaurant name with its address and opening
// hours underneath when the API provides them.
func RestaurantHeader(w io.Writer, r crous.Restaurant) {
	var details []string
	if r.Address != "" {
		details = append(details, r.Address)
	}
	details = append(details, r.Hours...)
	fmt.Fprintln(w)
	Box(w, Double, r.Name, details...)
}

func Menus(w io.Writer, r crous.Restaurant, menus []crous.Menu) {
	RestaurantHeader(w, r)
	for _, m := range menus {
		fmt.Fprintln(w)
		Box(w, Single, m.DisplayDate())
		Meals(w, m.Meals)
	}
	fmt.Fprintln(w)
}

func MenuForDate(w io.Writer, r crous.Restaurant, date string, m crous.Menu) {
	fmt.Fprintf(w, "\n%s%s - Menu du %s\n", indent, r.Name, date)
	fmt.Fprintln(w, indent+strings.Repeat("═", dateRuleWidth))
	Meals(w, m.Meals)
	fmt.Fprintln(w)
}

// Meals prints meal → category → dish, skipping placeholder dishes. A
// category left with no dish still gets its header.
func Meals(w io.Writer, meals []crous.Meal) {
	for _, meal := range meals {
		fmt.Fprintf(w, "\n%s%s\n", listIndent, Capitalize(meal.Type))
		fmt.Fprintln(w, listIndent+strings.Repeat("─", mealRuleWidth))

		for _, c := range meal.Categories {
			label := c.Label
			if label == "" {
				label = unnamedCategory
			}
			fmt.Fprintf(w, "\n%s[%s]\n", listIndent, label)
			for _, d := range c.VisibleDishes() {
				fmt.Fprintln(w, dishIndent+d)
			}
		}
	}
}
