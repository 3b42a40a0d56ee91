package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestPrinterPlain(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := New(&buf)

	p.Info("Au revoir !")
	p.Error("Choix invalide.")
	p.MenuOption("1", "Menu du jour")

	want := "  Au revoir !\n  Choix invalide.\n  1. Menu du jour\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
