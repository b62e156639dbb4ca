package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err, OutputFormat(formatFlag))
		os.Exit(1)
	}
}

// printError writes err in the selected output format. Devkit errors keep
// their code and suggested fixes.
func printError(w io.Writer, err error, format OutputFormat) {
	code := errors.CodeOf(err)

	var fixes []errors.FixAction
	var de *errors.DevkitError
	if stderrors.As(err, &de) {
		fixes = de.SuggestedFixes
	} else {
		fixes = errors.GetSuggestedFixes(code)
	}

	if format == FormatJSON {
		out, ferr := formatJSON(ErrorResponse{
			Error: ErrorBody{Code: code, Message: err.Error(), SuggestedFixes: fixes},
		})
		if ferr == nil {
			fmt.Fprintln(w, out)
			return
		}
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	for _, fix := range fixes {
		if fix.Command != "" {
			fmt.Fprintf(w, "  hint: %s\n    $ %s\n", fix.Description, fix.Command)
		} else if fix.Path != "" {
			fmt.Fprintf(w, "  hint: %s (%s)\n", fix.Description, fix.Path)
		}
	}
}

// ErrorResponse is the JSON shape of a failed command.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failure.
type ErrorBody struct {
	Code           errors.ErrorCode   `json:"code"`
	Message        string             `json:"message"`
	SuggestedFixes []errors.FixAction `json:"suggestedFixes,omitempty"`
}
