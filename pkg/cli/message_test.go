package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterColoursEachLevel(t *testing.T) {
	cases := []struct {
		name   string
		print  func(Printer, string)
		colour string
	}{
		{"error", Printer.Errorln, RedColour},
		{"success", Printer.Successln, GreenColour},
		{"warning", Printer.Warningln, YellowColour},
		{"magenta", Printer.Magentaln, MagentaColour},
		{"blue", Printer.Blueln, BlueColour},
		{"cyan", Printer.Cyanln, CyanColour},
		{"gray", Printer.Grayln, GrayColour},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		tc.print(NewPrinter(&buf), "hello")

		if buf.String() != tc.colour+"hello"+Reset+"\n" {
			t.Fatalf("%s: unexpected output %q", tc.name, buf.String())
		}
	}
}

func TestPrinterKeyValue(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).KeyValue("students", 3)

	if !strings.Contains(buf.String(), "students:") || !strings.HasSuffix(buf.String(), " 3\n") {
		t.Fatalf("unexpected row %q", buf.String())
	}
}
