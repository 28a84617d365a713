package main

import (
	"os"

	"github.com/arthur-debert/cursorrules/cmd/cursorrules"
	"github.com/arthur-debert/cursorrules/pkg/errors"
	"github.com/arthur-debert/cursorrules/pkg/output"
)

func main() {
	rootCmd := cursorrules.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := output.NewRenderer(os.Stderr, output.ColorEnabled(os.Stderr, false))
		if rerr != nil {
			os.Stderr.WriteString("Error: " + err.Error() + "\n")
			os.Exit(1)
		}

		renderer.Error(err)
		if errors.IsErrorCode(err, errors.ErrUnknownCommand) {
			os.Stderr.WriteString(cursorrules.MsgUsageHint + "\n")
		}
		os.Exit(1)
	}
}
