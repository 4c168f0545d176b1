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

const usage = `Usage:	signmsg <privatekey> <message>  # Sign from args
	signmsg -                       # Through stdin`

func newApp() *cli.App {
	return &cli.App{
		Name:        "signmsg",
		Usage:       "Sign a message with a PKT private key",
		UsageText:   usage,
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log decoding and signing steps to stderr",
			},
		},
		Action: signCommand,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s\n", err, usage)
		os.Exit(1)
	}
}

func signCommand(c *cli.Context) error {
	privateKey, message, err := readArgs(c)
	if err != nil {
		return err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = l.Sync() }()

	signature, err := checksig.NewClient().WithLogger(l).SignMessage(privateKey, message)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, signature)
	return nil
}

// readArgs returns the private key and message from argv or, when the only
// argument is "-", from one line of stdin.
func readArgs(c *cli.Context) (string, string, error) {
	args := c.Args().Slice()
	switch {
	case len(args) == 1 && args[0] == input.StdinArg:
		line, err := input.ReadLine(c.App.Reader)
		if err != nil {
			return "", "", err
		}
		return input.ParseSignLine(line)
	case len(args) == 1:
		return "", "", errors.Wrap(checksig.ErrArgument, "missing message")
	case len(args) == 2:
		return args[0], args[1], nil
	default:
		return "", "", errors.Wrap(checksig.ErrArgument, "invalid arguments")
	}
}
