// Package prompt reads validated answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bft-labs/bikeshare/internal/domain"
)

// ErrInputClosed is returned when the input ends before an answer is given.
// It wraps io.EOF.
var ErrInputClosed = fmt.Errorf("prompt: input closed: %w", io.EOF)

const (
	Greeting    = "Hello! Let's explore some US bikeshare data!"
	RetryChoice = "Incorrect input. Please try again."
	RetryYesNo  = "Incorrect input. Please only enter yes or no."
)

var (
	cityQuestion  = fmt.Sprintf("Please type a city name you want to analyze (%s): ", domain.CityNames())
	monthQuestion = `Please type the name of the month to filter by, or "all" to apply no month filter: `
	dayQuestion   = `Please type the name of the day of week to filter by, or "all" to apply no day filter: `
)

// line is one read from the input.
type line struct {
	text string
	err  error
}

// Prompter asks questions on out and reads answers from in.
// Lines are read on a background goroutine so a canceled context
// interrupts a pending question.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	start sync.Once
	lines chan line
	err   error // sticky once input fails or ends
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, lines: make(chan line)}
}

func (p *Prompter) readLines() {
	for {
		text, err := p.in.ReadString('\n')
		p.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// Ask prints question and returns the next line of input, trimmed and
// lowercased. It returns ctx.Err() if ctx is canceled first.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLines() })

	fmt.Fprint(p.out, question)
	var l line
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l = <-p.lines:
	}

	if l.err != nil {
		if errors.Is(l.err, io.EOF) {
			p.err = ErrInputClosed
		} else {
			p.err = fmt.Errorf("prompt: read: %w", l.err)
		}
		if l.text == "" || !errors.Is(l.err, io.EOF) {
			return "", p.err
		}
	}
	return domain.Normalize(l.text), nil
}

// Choose asks question until parse accepts the answer.
func (p *Prompter) Choose(ctx context.Context, question, retry string, parse func(string) (string, error)) (string, error) {
	for {
		answer, err := p.Ask(ctx, question)
		if err != nil {
			return "", err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}

// Confirm asks a yes/no question until the answer is exactly yes or no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Choose(ctx, question, RetryYesNo, parseYesNo)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

// AskRestart asks question once. Only yes continues; any other answer,
// including closed input or a canceled context, stops.
func (p *Prompter) AskRestart(ctx context.Context, question string) bool {
	answer, err := p.Ask(ctx, question)
	return err == nil && answer == "yes"
}

// Filters greets the user and collects a city, month and day, re-asking
// each until it matches its allow-list.
func (p *Prompter) Filters(ctx context.Context) (domain.Filter, error) {
	fmt.Fprintln(p.out, Greeting)

	city, err := p.Choose(ctx, cityQuestion, RetryChoice, func(s string) (string, error) {
		c, err := domain.ParseCity(s)
		return string(c), err
	})
	if err != nil {
		return domain.Filter{}, err
	}
	month, err := p.Choose(ctx, monthQuestion, RetryChoice, domain.ParseMonth)
	if err != nil {
		return domain.Filter{}, err
	}
	day, err := p.Choose(ctx, dayQuestion, RetryChoice, domain.ParseDay)
	if err != nil {
		return domain.Filter{}, err
	}

	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return domain.Filter{City: domain.City(city), Month: month, Day: day}, nil
}

func parseYesNo(s string) (string, error) {
	if s == "yes" || s == "no" {
		return s, nil
	}
	return "", fmt.Errorf("not yes or no: %q", s)
}
