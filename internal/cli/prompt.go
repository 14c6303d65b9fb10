package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptYears asks for the look-back window until a positive integer
// is entered. An empty line accepts the default. Returns 0 if input is
// exhausted before a valid answer arrives.
func promptYears(in *bufio.Reader, out io.Writer, def int) int {
	for {
		fmt.Fprintf(out, "\nHow many years back do you want to search? (default: %d): ", def)
		line, err := in.ReadString('\n')
		text := strings.TrimSpace(line)

		if text == "" {
			return def
		}

		n, convErr := strconv.Atoi(text)
		switch {
		case convErr != nil:
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
		case n <= 0:
			fmt.Fprintln(out, "Please enter a positive number.")
		default:
			return n
		}

		if err != nil {
			return 0
		}
	}
}

// promptMonth asks for a month number until a value between 1 and 12
// is entered. Returns 0 if input is exhausted before a valid answer
// arrives.
func promptMonth(in *bufio.Reader, out io.Writer) int {
	for {
		fmt.Fprint(out, "\nEnter the month number (1-12): ")
		line, err := in.ReadString('\n')
		text := strings.TrimSpace(line)

		n, convErr := strconv.Atoi(text)
		switch {
		case convErr != nil:
			fmt.Fprintln(out, "Invalid input. Please enter a number.")
		case n < 1 || n > 12:
			fmt.Fprintln(out, "Please enter a number between 1 and 12.")
		default:
			return n
		}

		if err != nil {
			return 0
		}
	}
}

// promptYesNo asks a yes/no question; anything other than "y" counts
// as no.
func promptYesNo(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, _ := in.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
