// Command pph21 is the interactive monthly PPh 21 calculator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"

	"github.com/windeesel365/pph21-ter/input"
	"github.com/windeesel365/pph21-ter/rupiah"
	"github.com/windeesel365/pph21-ter/ter"
)

func main() {
	logger := log.New("pph21")
	logger.SetOutput(os.Stderr)
	logger.SetHeader("${level}")

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatalf("gagal membaca input: %v", err)
	}
}

func run(in io.Reader, out io.Writer, logger *log.Logger) error {
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(out, "║                 KALKULATOR PPh 21 BULANAN                    ║")
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════════╝")

	p := input.NewPrompter(in, out)

	income, err := p.ReadIncome("\n💵 Masukkan Penghasilan Bruto Bulanan (contoh: 10000000): ")
	if err != nil {
		return err
	}
	status, err := p.SelectStatus()
	if err != nil {
		return err
	}
	method, err := p.SelectMethod()
	if err != nil {
		return err
	}

	r := ter.CalculateFor(income, status, method)
	warnIfNotConverged(logger, r)

	printResult(out, status, r)
	return nil
}

func warnIfNotConverged(logger *log.Logger, r ter.Result) {
	if r.Converged {
		return
	}
	logger.Warnf("perhitungan gross up tidak konvergen setelah %d iterasi, memakai tarif %s",
		r.Iterations, rupiah.FormatRate(r.Rate))
}

func printResult(out io.Writer, status ter.Status, r ter.Result) {
	row := func(label, value string) {
		fmt.Fprintf(out, "   %-26s: %s\n", label, value)
	}

	fmt.Fprintln(out, "\n══════════════════ HASIL PERHITUNGAN ══════════════════")
	row("Status PTKP", status.Label())
	row("Kategori TER", r.Category.String())
	row("Metode", r.Method.Label())
	row("Penghasilan Bruto", rupiah.Format(r.Income))
	if r.Method == ter.GrossUp {
		row("Tunjangan Pajak", rupiah.Format(r.Allowance))
		row("Total Penghasilan Bruto", rupiah.Format(r.Total))
	}
	row("Tarif TER", rupiah.FormatRate(r.Rate))
	row("PPh 21 Bulanan", rupiah.Format(r.Tax))
	row("Take Home Pay", rupiah.Format(r.TakeHomePay()))
}
