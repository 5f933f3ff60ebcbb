// Package view is the console boundary of the game: it prompts for input,
// reads raw lines and prints errors and the final transcript.
package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompts shown before each input stage.
const (
	CarNamesPrompt    = "경주할 자동차 이름을 입력하세요.(이름은 쉼표(,) 기준으로 구분)"
	TotalRoundsPrompt = "시도할 회수는 몇회인가요?"
)

// Console reads answers line by line from In and writes everything to Out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console view.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadCarNames prompts for comma-delimited car names and returns the raw line.
func (c *Console) ReadCarNames() (string, error) {
	return c.ask(CarNamesPrompt)
}

// ReadTotalRounds prompts for the round count and returns the raw line.
func (c *Console) ReadTotalRounds() (string, error) {
	return c.ask(TotalRoundsPrompt)
}

// PrintError writes a validation message verbatim.
func (c *Console) PrintError(message string) {
	fmt.Fprintln(c.out, message)
}

// PrintResult writes the transcript, preceded by a blank line.
func (c *Console) PrintResult(transcript string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, transcript)
}

// ask returns io.EOF once input is exhausted.
func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprintln(c.out, prompt)

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}
