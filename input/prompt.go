package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/windeesel365/pph21-ter/ter"
)

// Prompter asks questions on out and reads answers from in, re-prompting
// until an answer is valid. Only I/O failures are returned as errors.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadIncome prints prompt and reads a monthly income.
func (p *Prompter) ReadIncome(prompt string) (int64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		raw, err := p.readLine()
		if err != nil {
			return 0, err
		}

		v, err := ParseIncome(raw)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "❌ %s.\n", capitalize(err.Error()))
		if err == ErrSeparator {
			fmt.Fprintln(p.out, "   Contoh benar: 10000 (bukan 10.000 atau 10,000)")
		}
		fmt.Fprintln(p.out)
	}
}

// SelectStatus shows the PTKP menu and reads a choice from 1 to 8.
func (p *Prompter) SelectStatus() (ter.Status, error) {
	statuses := ter.Statuses()

	fmt.Fprintln(p.out, "\n📋 Pilih Status PTKP:")
	for i, s := range statuses {
		fmt.Fprintf(p.out, "   %d. %s\n", i+1, s.Label())
	}

	n, err := p.choose(len(statuses))
	if err != nil {
		return 0, err
	}
	return statuses[n-1], nil
}

// SelectMethod shows the method menu and reads 1 (gross) or 2 (gross up).
func (p *Prompter) SelectMethod() (ter.Method, error) {
	methods := []ter.Method{ter.Gross, ter.GrossUp}

	fmt.Fprintln(p.out, "\n📋 Pilih Metode Perhitungan:")
	for i, m := range methods {
		fmt.Fprintf(p.out, "   %d. %s\n", i+1, m.Label())
	}

	n, err := p.choose(len(methods))
	if err != nil {
		return 0, err
	}
	return methods[n-1], nil
}

func (p *Prompter) choose(max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "\nPilihan Anda (1-%d): ", max)
		raw, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Fprintln(p.out, "❌ Pilihan tidak valid.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
