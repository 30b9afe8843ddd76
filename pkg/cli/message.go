package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer writes coloured lines. A nil writer falls back to stdout.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) Printer {
	if out == nil {
		out = os.Stdout
	}

	return Printer{out: out}
}

func (p Printer) paint(colour, message string) {
	fmt.Fprintln(p.out, colour+message+Reset)
}

func (p Printer) Errorln(message string) {
	p.paint(RedColour, message)
}

func (p Printer) Successln(message string) {
	p.paint(GreenColour, message)
}

func (p Printer) Warningln(message string) {
	p.paint(YellowColour, message)
}

func (p Printer) Magentaln(message string) {
	p.paint(MagentaColour, message)
}

func (p Printer) Blueln(message string) {
	p.paint(BlueColour, message)
}

func (p Printer) Cyanln(message string) {
	p.paint(CyanColour, message)
}

func (p Printer) Grayln(message string) {
	p.paint(GrayColour, message)
}

// KeyValue prints an aligned "key: value" row with the key in cyan.
func (p Printer) KeyValue(key string, value any) {
	fmt.Fprintf(p.out, "%s%-18s%s %v\n", CyanColour, key+":", Reset, value)
}
