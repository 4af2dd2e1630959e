package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptPort asks for a port name on out and reads the answer from in.
// A blank answer, or no answer at all, selects def.
func PromptPort(in io.Reader, out io.Writer, def string) string {
	fmt.Fprintf(out, "Serial port (press Enter for %s): ", def)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return def
	}
	if port := strings.TrimSpace(scanner.Text()); port != "" {
		return port
	}
	return def
}

// WaitForEnter prints msg and blocks until a line (or EOF) arrives on in.
func WaitForEnter(in io.Reader, out io.Writer, msg string) {
	fmt.Fprint(out, msg)
	_, _ = bufio.NewReader(in).ReadString('\n')
}
