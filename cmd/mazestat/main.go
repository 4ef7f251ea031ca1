// Command mazestat carves a maze from command-line flags (or MAZE_*
// environment variables, optionally loaded from a .env file) and prints
// its quality report: passages, dead ends, perfect-maze check and the
// longest path. It never draws the maze.
//
// With --min-length the seed is bumped until the longest path reaches the
// requested length or --attempts runs out, so a reported seed always
// reproduces the reported maze.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "mazestat"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("%s: %v", AppName, err)
	}
}

// newCommand wires flags to a config and runs it.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "generate a seeded maze and report its quality",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Value: 10, Usage: "number of rows", Sources: cli.EnvVars("MAZE_ROWS")},
			&cli.IntFlag{Name: "columns", Aliases: []string{"c"}, Value: 10, Usage: "number of columns", Sources: cli.EnvVars("MAZE_COLUMNS")},
			&cli.StringFlag{Name: "algorithm", Aliases: []string{"a"}, Value: "binary-tree", Usage: "binary-tree, aldous-broder, recursive-backtracker or recursive-division", Sources: cli.EnvVars("MAZE_ALGORITHM")},
			&cli.Int64Flag{Name: "seed", Aliases: []string{"s"}, Usage: "random seed (default: derived from the clock and printed)", Sources: cli.EnvVars("MAZE_SEED")},
			&cli.IntFlag{Name: "start-row", Usage: "row of the cell distances are measured from", Sources: cli.EnvVars("MAZE_START_ROW")},
			&cli.IntFlag{Name: "start-column", Usage: "column of the cell distances are measured from", Sources: cli.EnvVars("MAZE_START_COLUMN")},
			&cli.IntFlag{Name: "min-length", Usage: "retry with the next seed until the longest path is at least this long", Sources: cli.EnvVars("MAZE_MIN_LENGTH")},
			&cli.IntFlag{Name: "attempts", Value: 100, Usage: "maximum seeds tried with --min-length", Sources: cli.EnvVars("MAZE_ATTEMPTS")},
			&cli.BoolFlag{Name: "json", Usage: "print the report as JSON"},
			&cli.BoolFlag{Name: "path", Usage: "include the longest path cells in the report"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging", Sources: cli.EnvVars("MAZE_DEBUG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}

			seed := cmd.Int64("seed")
			if !cmd.IsSet("seed") {
				seed = time.Now().UnixNano()
			}
			cfg := config{
				Rows:        cmd.Int("rows"),
				Columns:     cmd.Int("columns"),
				Algorithm:   cmd.String("algorithm"),
				Seed:        seed,
				StartRow:    cmd.Int("start-row"),
				StartColumn: cmd.Int("start-column"),
				MinLength:   cmd.Int("min-length"),
				Attempts:    cmd.Int("attempts"),
				JSON:        cmd.Bool("json"),
				WithPath:    cmd.Bool("path"),
				Debug:       cmd.Bool("debug"),
			}
			out := cmd.Root().Writer
			if out == nil {
				out = os.Stdout
			}
			return run(out, cfg)
		},
	}
}
