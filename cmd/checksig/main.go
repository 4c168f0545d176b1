package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cjdelisle/pkt-checksig/internal/input"
	"github.com/cjdelisle/pkt-checksig/internal/logger"
	"github.com/cjdelisle/pkt-checksig/pkg/checksig"
)

const usage = `Usage: checksig <address> <signature> <message>  # Check signature from args
       checksig -                                # Through stdin`

func newApp() *cli.App {
	return &cli.App{
		Name:        "checksig",
		Usage:       "Verify a signed message against a PKT address",
		UsageText:   usage,
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log decoding and verification steps to stderr",
			},
		},
		Action: verifyCommand,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s\n", err, usage)
		os.Exit(1)
	}
}

func verifyCommand(c *cli.Context) error {
	address, signature, message, err := readArgs(c)
	if err != nil {
		return err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = l.Sync() }()

	client := checksig.NewClient().WithLogger(l)
	if err := client.VerifyMessage(address, signature, message); err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

// readArgs returns address, signature and message from argv or, when the
// only argument is "-", from one line of stdin.
func readArgs(c *cli.Context) (string, string, string, error) {
	args := c.Args().Slice()
	switch {
	case len(args) == 1 && args[0] == input.StdinArg:
		line, err := input.ReadLine(c.App.Reader)
		if err != nil {
			return "", "", "", err
		}
		return input.ParseVerifyLine(line)
	case len(args) == 3:
		return args[0], args[1], args[2], nil
	default:
		return "", "", "", errors.Wrapf(checksig.ErrArgument, "expected 3 arguments, got %d", len(args))
	}
}
