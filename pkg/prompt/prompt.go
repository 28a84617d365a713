// Package prompt asks the user which bundle to install.
package prompt

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/registry"
)

// Choice is the outcome of one prompt.
type Choice struct {
	Bundle registry.Bundle
	// Input is the trimmed answer as typed.
	Input string
	// FellBack is set when Input could not be resolved and the default was used.
	FellBack bool
}

// Console prompts on a line-oriented reader/writer pair.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// NewConsole creates a console prompt
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{In: in, Out: out}
}

// Choose prints the numbered bundle menu and reads one answer. An empty
// answer (or EOF) picks def. Answers may be an ordinal or a bundle key;
// anything else picks def and sets FellBack.
func (c *Console) Choose(reg *registry.Registry, def registry.Bundle) (Choice, error) {
	fmt.Fprintln(c.Out, "Select a rule bundle:")
	fmt.Fprintln(c.Out)
	for i, b := range reg.Bundles() {
		marker := " "
		if b.Key == def.Key {
			marker = "*"
		}
		fmt.Fprintf(c.Out, " %s %d) %-10s %2d rules  %s\n", marker, i+1, b.Name, b.Count(), b.Description)
	}
	fmt.Fprintln(c.Out)
	fmt.Fprintf(c.Out, "Bundle [%s]: ", def.Key)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return Choice{}, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return Choice{Bundle: def}, nil
	}
	if b, ok := reg.ParseOrdinal(answer); ok {
		return Choice{Bundle: b, Input: answer}, nil
	}
	if b, ok := reg.Resolve(strings.ToLower(answer)); ok {
		return Choice{Bundle: b, Input: answer}, nil
	}
	return Choice{Bundle: def, Input: answer, FellBack: true}, nil
}
