// Command tscheck runs the gateway's timesheet rules against a draft file
// without a server or backend:
//
//	tscheck --file draft.json [--submit] [--json]
//
// The draft uses the same JSON shape as PUT /api/v1/timesheets. Each
// violation is printed on its own line; a valid draft prints nothing. The
// exit status is 0 for a valid draft, 1 when there are violations, and 2 for
// usage or IO errors.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/jsamuelsen11/payroo-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/payroo-gateway/internal/domain/timesheet"
)

// Exit codes.
const (
	exitValid      = 0
	exitViolations = 1
	exitUsage      = 2
)

type options struct {
	File   string `short:"f" long:"file" required:"true" value-name:"PATH" description:"draft timesheet JSON file, or - for stdin"`
	Submit bool   `short:"s" long:"submit" description:"apply the submission rules as well as field validation"`
	JSON   bool   `long:"json" description:"print the result as {valid, violations} JSON"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "tscheck"

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitValid
		}
		fmt.Fprintf(stderr, "tscheck: %v\n", err)
		return exitUsage
	}

	draft, err := readDraft(opts.File, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "tscheck: %v\n", err)
		return exitUsage
	}

	var violations []string
	if opts.Submit {
		violations = timesheet.ValidateForSubmit(*draft)
	} else {
		violations = timesheet.Validate(*draft)
	}

	if err := report(stdout, violations, opts.JSON); err != nil {
		fmt.Fprintf(stderr, "tscheck: writing result: %v\n", err)
		return exitUsage
	}
	if len(violations) > 0 {
		return exitViolations
	}
	return exitValid
}

func readDraft(path string, stdin io.Reader) (*timesheet.Draft, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening draft: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req dto.TimesheetRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading %s: empty draft", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return req.ToDomain(), nil
}

func report(w io.Writer, violations []string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToValidateResponse(violations))
	}
	for _, v := range violations {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
