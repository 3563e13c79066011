package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bisegni/cursormock/pkg/console"
	"github.com/bisegni/cursormock/pkg/database"
	"github.com/chzyer/readline"
)

// RunInteractive loads every file into a catalog and starts a console on
// the first one. The other tables are reachable with the use command.
func RunInteractive(filenames ...string) error {
	fmt.Println("Interactive mode enabled. Type 'help' for commands, 'exit' or 'quit' to leave.")

	catalog, first, err := loadCatalog(filenames)
	if err != nil {
		return err
	}

	session, err := console.NewCatalogSession(catalog, first, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { session.Cursor().Close() }()
	c := session.Cursor()
	fmt.Printf("%s: %d row(s), %d column(s)\n", first, c.Count(), c.ColumnCount())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "", // In-memory history for this session
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "quit") {
			break
		}

		if err := session.Execute(trimmed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	return nil
}

// loadCatalog registers one table per file and returns the name of the
// first. A later file with the same table name replaces the earlier one.
func loadCatalog(filenames []string) (*database.Catalog, string, error) {
	catalog := database.NewCatalog()
	var first string
	for _, filename := range filenames {
		if filename == "-" {
			fmt.Println("Reading from stdin...")
		} else {
			fmt.Printf("Reading from file: %s\n", filename)
		}
		t, err := loadInput(filename)
		if err != nil {
			return nil, "", err
		}
		catalog.RegisterTable(t)
		if first == "" {
			first = t.Name
		}
	}
	if first == "" {
		return nil, "", fmt.Errorf("no input to load")
	}
	return catalog, first, nil
}
