package emulator

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/ezrec/fdesim/translate"
)

// Session is the interactive run, pipeline and reset loop of the simulator.
type Session struct {
	Emulator *Emulator
	Input    io.Reader // Source of the yes/no answers.
	Output   io.Writer // Destination of the prompts.

	scanner *bufio.Scanner
	err     error
}

func (ss *Session) line(key message.Reference, args ...any) {
	if ss.err != nil {
		return
	}
	_, ss.err = translate.Fprintln(ss.Output, key, args...)
}

// ask prompts with a question, and returns the trimmed, lower case answer.
// ok is false at the end of the input.
func (ss *Session) ask(question message.Reference) (answer string, ok bool) {
	ss.line("")
	ss.line(question)

	if !ss.scanner.Scan() {
		return
	}

	answer = strings.ToLower(strings.TrimSpace(ss.scanner.Text()))
	ok = true
	return
}

// Run the session until the user declines another run, or the input ends.
//
// An answer other than yes or no to the reset question runs the program
// again without a reset.
func (ss *Session) Run() (err error) {
	emu := ss.Emulator
	ss.scanner = bufio.NewScanner(ss.Input)
	ss.err = nil

	ss.line("Welcome to the Processor Simulation with Fetch-Decode-Execute Cycle!")

loop:
	for {
		err = emu.Run()
		if err != nil {
			return
		}

		answer, ok := ss.ask("Would you like to see the implemented pipeline? (yes/no)")
		if !ok {
			break
		}
		if answer == "yes" {
			_, err = emu.Pipeline()
			if err != nil {
				return
			}
		}

		answer, ok = ss.ask("Would you like to reset the CPU and run the simulation again? (yes/no)")
		switch {
		case !ok, answer == "no":
			break loop
		case answer == "yes":
			err = emu.Reset()
			if err != nil {
				return
			}
		default:
			ss.line("Invalid input. Please enter 'yes' or 'no'.")
		}
	}

	ss.line("Exiting simulation.")

	err = ss.err
	if err == nil {
		err = ss.scanner.Err()
	}

	return
}
