package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on w and reads the answer from r. Only
// "y" or "yes", in any case, confirms. A read error declines.
func Confirm(r io.Reader, w io.Writer, message string) bool {
	fmt.Fprintf(w, "%s (yes/no): ", message)

	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
