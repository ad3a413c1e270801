package lampsetup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter collects operator input.
type Prompter interface {
	// AskDomain returns a validated domain, re-asking until one is given.
	AskDomain(ctx context.Context) (string, error)
	Confirm(ctx context.Context, q Question, text string, def bool) (bool, error)
}

// LinePrompter asks questions on a line-oriented terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) AskDomain(ctx context.Context) (string, error) {
	for {
		fmt.Fprintf(p.out, "Enter the domain name (default: %s): ", DefaultDomain)
		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		domain, err := NormalizeDomain(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid domain name. Use letters, digits, '.' and '-', not only dots.")
			continue
		}
		return domain, nil
	}
}

func (p *LinePrompter) Confirm(ctx context.Context, _ Question, text string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", text, hint)
		line, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine returns one line without its terminator. A final line without a
// newline is still returned; an empty read at EOF is ErrInputClosed.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		line := strings.TrimRight(r.line, "\r\n")
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && r.line != "" {
				return line, nil
			}
			if errors.Is(r.err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", r.err
		}
		return line, nil
	}
}

// AnswersPrompter serves pre-supplied answers and defers everything else.
type AnswersPrompter struct {
	answers Answers
	next    Prompter
}

func NewAnswersPrompter(answers Answers, next Prompter) *AnswersPrompter {
	return &AnswersPrompter{answers: answers, next: next}
}

func (p *AnswersPrompter) AskDomain(ctx context.Context) (string, error) {
	if p.answers.Domain != "" {
		if err := ValidateDomain(p.answers.Domain); err != nil {
			return "", err
		}
		return p.answers.Domain, nil
	}
	return p.next.AskDomain(ctx)
}

func (p *AnswersPrompter) Confirm(ctx context.Context, q Question, text string, def bool) (bool, error) {
	if v := p.answers.lookup(q); v != nil {
		return *v, nil
	}
	return p.next.Confirm(ctx, q, text, def)
}
