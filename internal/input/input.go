// Package input frames the arguments of the command line tools when they are
// read from standard input instead of argv.
package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/cjdelisle/pkt-checksig/pkg/checksig"
)

// StdinArg is the single positional argument that makes a tool read its
// arguments from standard input.
const StdinArg = "-"

// ReadLine reads one line from r without its line terminator. A final line
// without a newline is accepted.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading stdin")
	}
	if err == io.EOF && line == "" {
		return "", errors.Wrap(checksig.ErrArgument, "reading stdin: no input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseVerifyLine splits "address signature message". The message is the
// remainder of the line and may contain spaces.
func ParseVerifyLine(line string) (address, signature, message string, err error) {
	address, rest, ok := strings.Cut(line, " ")
	if !ok {
		return "", "", "", errors.Wrapf(checksig.ErrArgument, "reading stdin: no space found: %q", line)
	}
	signature, message, ok = strings.Cut(rest, " ")
	if !ok {
		return "", "", "", errors.Wrapf(checksig.ErrArgument, "reading stdin: no space found after address: %q", line)
	}
	return address, signature, message, nil
}

// ParseSignLine splits "privatekey message". Surrounding whitespace is
// trimmed from both fields and neither may be empty.
func ParseSignLine(line string) (privateKey, message string, err error) {
	privateKey, message, _ = strings.Cut(strings.TrimSpace(line), " ")
	privateKey = strings.TrimSpace(privateKey)
	message = strings.TrimSpace(message)
	if privateKey == "" {
		return "", "", errors.Wrap(checksig.ErrArgument, "missing privkey")
	}
	if message == "" {
		return "", "", errors.Wrap(checksig.ErrArgument, "missing message")
	}
	return privateKey, message, nil
}
