package stderr

import (
	"bufio"
	"io"
	"strings"
)

// maxLine caps the length of a forwarded line.
const maxLine = 200

var messages = make(chan string, 64)

// Messages returns the channel of captured lines.
func Messages() <-chan string {
	return messages
}

// pump forwards cleaned lines from r to out until r is closed. Lines are
// dropped while out is full.
func pump(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := Clean(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}

// Clean collapses whitespace and caps the length of a captured line.
func Clean(line string) string {
	line = strings.Join(strings.Fields(line), " ")
	if len(line) > maxLine {
		line = line[:maxLine]
	}
	return line
}
