package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	info    = color.New(color.FgCyan).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
	errMsg  = color.New(color.FgRed).SprintFunc()
	muted   = color.New(color.Faint).SprintFunc()
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, info("  "+msg))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, success("  "+msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, errMsg("  "+msg))
}

func (p *Printer) Muted(msg string) {
	fmt.Fprintln(p.w, muted("  "+msg))
}

func (p *Printer) MenuOption(key, desc string) {
	fmt.Fprintf(p.w, "  %s %s\n", info(key+"."), desc)
}
