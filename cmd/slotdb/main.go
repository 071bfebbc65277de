// Command slotdb is the interactive prompt for the embedded single-table
// database. It is the REPL adapter kept separate from the core: argument
// parsing, prompt rendering, statement classification, and process-exit
// wiring live here; storage and execution live in the
// row/pager/table/executor packages.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"slotdb/executor"
	"slotdb/table"
)

var cli struct {
	Database string `arg:"" required:"" name:"database" help:"Path to the database file." type:"path"`
}

func main() {
	parser, err := kong.New(&cli, kong.Name("slotdb"), kong.UsageOnError())
	if err != nil {
		panic(err)
	}
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		fmt.Printf("Usage: %s <database_file_name>\n", os.Args[0])
		fmt.Println("Goodbye!")
		os.Exit(1)
	}

	t, err := table.Open(cli.Database)
	if err != nil || !t.Healthy {
		fmt.Printf("File %s doesn't exist and could not be created. Goodbye!\n", cli.Database)
		os.Exit(1)
	}

	runRepl(t, os.Stdin, os.Stdout)

	if err := t.Close(); err != nil {
		fmt.Println("Could not flush database to disk:", err)
	}
	fmt.Println("Goodbye!")
}

// runRepl drives the read-classify-execute loop until ".exit" or input
// ends. Split out from main so it can be driven end-to-end in tests
// without a subprocess.
func runRepl(t *table.Table, in io.Reader, out io.Writer) {
	running := true
	reader := bufio.NewReader(in)

	for running {
		fmt.Fprint(out, "db > ")
		input, err := readInput(reader)
		if err != nil {
			return
		}

		if len(input) > 0 && input[0] == '.' {
			result, diagnostic := doMetaCommand(input, &running)
			switch result {
			case MetaCommandSuccess:
				if diagnostic != "" {
					fmt.Fprintln(out, diagnostic)
				}
				continue
			case MetaCommandUnrecognized:
				fmt.Fprintf(out, "Unrecognized command %q\n", input)
				continue
			}
		}

		stmt, prepared := prepareStatement(input)
		switch prepared {
		case PrepareSuccess:
		case PrepareUnrecognizedStatement:
			fmt.Fprintf(out, "Unrecognized statement %q\n", input)
			continue
		case PrepareSyntaxError:
			fmt.Fprintf(out, "Syntax error in: %q\n", input)
			continue
		case PrepareError:
			fmt.Fprintln(out, "Could not prepare statement")
			continue
		}

		switch executor.Execute(stmt, t, out) {
		case executor.Success:
			fmt.Fprintln(out, "Execution Success!")
		case executor.Failed:
			fmt.Fprintln(out, "Execution Failed!")
		case executor.TableFull:
			fmt.Fprintln(out, "Table is full!")
		}
	}
}
