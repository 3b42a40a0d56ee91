package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"crousmenu/internal/crous"
)

func TestCenter(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  string
	}{
		{"abc", 7, "  abc  "},
		{"ab", 5, " ab  "},
		{"é", 4, " é  "},
		{"toolong", 3, "toolong"},
	}
	for _, tc := range cases {
		if got := Center(tc.s, tc.width); got != tc.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestBoxWidth(t *testing.T) {
	if got := BoxWidth("RU"); got != MinBoxWidth {
		t.Errorf("short title width = %d", got)
	}
	long := strings.Repeat("x", 60)
	if got := BoxWidth(long); got != 66 {
		t.Errorf("long title width = %d", got)
	}
	if got := BoxWidth("Cafétéria"); got != MinBoxWidth {
		t.Errorf("accented title width = %d", got)
	}
}

func TestBoxLinesAligned(t *testing.T) {
	var buf bytes.Buffer
	Box(&buf, Double, "RU GreEn-ER", "3 parvis Louis Néel", strings.Repeat("horaires ", 20))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	want := len(indent) + MinBoxWidth + 2
	for _, ln := range lines {
		if w := runewidth.StringWidth(ln); w != want {
			t.Errorf("line %q has width %d, want %d", ln, w, want)
		}
	}
	if !strings.HasPrefix(lines[0], "  ╔═") || !strings.HasPrefix(lines[2], "  ╠═") || !strings.HasPrefix(lines[5], "  ╚═") {
		t.Errorf("unexpected frame:\n%s", buf.String())
	}
	if !strings.Contains(lines[1], "RU GreEn-ER") {
		t.Errorf("title line = %q", lines[1])
	}
}

func TestRegions(t *testing.T) {
	var buf bytes.Buffer
	Regions(&buf, []crous.Region{{Code: 1, Name: "Grenoble"}})
	out := buf.String()

	if !strings.Contains(out, "╔") || !strings.Contains(out, regionsTitle) {
		t.Errorf("missing boxed header:\n%s", out)
	}
	if !strings.Contains(out, "\n    [ 1] Grenoble\n") {
		t.Errorf("missing region line:\n%s", out)
	}
}

func TestRestaurants(t *testing.T) {
	var buf bytes.Buffer
	Restaurants(&buf, []crous.Restaurant{
		{Code: 1456, Name: "RU GreEn-ER", Open: true, Region: crous.Region{Code: 1, Name: "Grenoble"}},
		{Code: 12, Name: "Cafét Diderot", Open: false, Region: crous.Region{Code: 1, Name: "Grenoble"}},
	})
	out := buf.String()

	for _, want := range []string{
		"Restaurants - Grenoble",
		"    [1456] RU GreEn-ER (ouvert)\n",
		"    [  12] Cafét Diderot (fermé)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSearchResults(t *testing.T) {
	var buf bytes.Buffer
	SearchResults(&buf, []crous.Restaurant{{Code: 2001, Name: "RU Green Park", Region: crous.Region{Name: "Lyon"}}})
	out := buf.String()
	if !strings.Contains(out, "1 résultat(s) :") || !strings.Contains(out, "    [2001] RU Green Park (Lyon)\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestMealsSuppressesPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	Meals(&buf, []crous.Meal{{
		Type: "dejeuner",
		Categories: []crous.Category{{
			Label:  "Entrées",
			Dishes: []crous.Dish{{Label: "Salade"}, {Label: "--"}, {Label: ""}},
		}},
	}})
	out := buf.String()

	if n := strings.Count(out, "[Entrées]"); n != 1 {
		t.Errorf("category header printed %d times", n)
	}
	if n := strings.Count(out, dishIndent); n != 1 {
		t.Errorf("want exactly one dish line, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, "      - Salade\n") {
		t.Errorf("missing dish line:\n%s", out)
	}
	if !strings.Contains(out, "    Dejeuner\n") {
		t.Errorf("meal type not capitalized:\n%s", out)
	}
}

func TestMealsKeepsEmptyCategoryAndOrder(t *testing.T) {
	var buf bytes.Buffer
	Meals(&buf, []crous.Meal{{
		Type: "DINER",
		Categories: []crous.Category{
			{Label: "Plats", Dishes: []crous.Dish{{Label: "Fermé"}}},
			{Dishes: []crous.Dish{{Label: "Lasagnes"}, {Label: "  Frites "}}},
		},
	}})
	out := buf.String()

	if !strings.Contains(out, "[Plats]") || strings.Contains(out, "Fermé") {
		t.Errorf("empty category handling:\n%s", out)
	}
	if !strings.Contains(out, "[Sans catégorie]") {
		t.Errorf("missing default category label:\n%s", out)
	}
	if i, j := strings.Index(out, "Lasagnes"), strings.Index(out, "- Frites\n"); i < 0 || j < 0 || i > j {
		t.Errorf("dishes out of order:\n%s", out)
	}
	if !strings.Contains(out, "    Diner\n") {
		t.Errorf("meal type = \n%s", out)
	}
}

func TestMenus(t *testing.T) {
	var buf bytes.Buffer
	r := crous.Restaurant{Code: 1456, Name: "RU GreEn-ER", Address: "3 parvis Louis Néel", Hours: []string{"11h30-13h30"}}
	Menus(&buf, r, []crous.Menu{
		{Date: "2026-10-15", Meals: []crous.Meal{{Type: "dejeuner"}}},
		{Date: "2026-10-16"},
	})
	out := buf.String()

	for _, want := range []string{"RU GreEn-ER", "3 parvis Louis Néel", "11h30-13h30", "15-10-2026", "16-10-2026", "┌", "Dejeuner"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMenuForDate(t *testing.T) {
	var buf bytes.Buffer
	MenuForDate(&buf, crous.Restaurant{Name: "RU GreEn-ER"}, "15-10-2026", crous.Menu{Meals: []crous.Meal{{Type: "dejeuner"}}})
	out := buf.String()
	if !strings.HasPrefix(out, "\n  RU GreEn-ER - Menu du 15-10-2026\n  ═") {
		t.Errorf("unexpected header:\n%s", out)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{"dejeuner": "Dejeuner", "DINER": "Diner", "": "", "été": "Été"}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
