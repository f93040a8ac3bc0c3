package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// prompter reads one answer per line. Every ask* re-prompts until the answer
// is acceptable and returns io.EOF once the input is exhausted.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 64*1024)
	return &prompter{in: sc, out: out}
}

func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askString returns an answer matching pat. With optional set a blank answer
// is accepted as "".
func (p *prompter) askString(prompt string, pat validate.Pattern, invalid string, optional bool) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return "", err
		}
		if s == "" && optional {
			return "", nil
		}
		if validate.Match(s, pat) {
			return s, nil
		}
		fmt.Fprintln(p.out, invalid)
	}
}

// askID upper-cases the answer before matching, so ids may be typed in any
// case.
func (p *prompter) askID(prompt string, pat validate.Pattern, invalid string, optional bool) (string, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return "", err
		}
		s = strings.ToUpper(s)
		if s == "" && optional {
			return "", nil
		}
		if validate.Match(s, pat) {
			return s, nil
		}
		fmt.Fprintln(p.out, invalid)
	}
}

func (p *prompter) askInt(prompt string, min, max int) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(s)
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, "Invalid number format. Please enter a number.")
		case n < min || n > max:
			fmt.Fprintf(p.out, "Choice must be between %d and %d.\n", min, max)
		default:
			return n, nil
		}
	}
}

// askDate returns a dd/mm/yyyy date accepted by ok. With optional set a blank
// answer returns the zero time.
func (p *prompter) askDate(prompt string, optional bool, ok func(time.Time) string) (time.Time, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return time.Time{}, err
		}
		if s == "" && optional {
			return time.Time{}, nil
		}
		d, parseErr := validate.ParseDate(s)
		if parseErr != nil {
			fmt.Fprintln(p.out, "Invalid date. Use dd/MM/yyyy.")
			continue
		}
		if msg := ok(d); msg != "" {
			fmt.Fprintln(p.out, msg)
			continue
		}
		return d, nil
	}
}

func (p *prompter) askYesNo(prompt string) (bool, error) {
	for {
		s, err := p.line(prompt + " (yes/no or y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter 'yes', 'no', 'y', or 'n'.")
	}
}

// pause waits for Enter.
func (p *prompter) pause() error {
	_, err := p.line("Press Enter to return to the main menu...")
	return err
}
