package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/varkel/sudoku/internal/generator"
	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
)

var (
	genVariant    string
	genDifficulty string
	genNumber     int
	genSeed       int64
	genTimeout    time.Duration
	genOutput     string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles for a variant at a difficulty tier.

Examples:
  sudoku gen --variant standard --difficulty easy
  sudoku gen --variant killer -n 5 --difficulty medium
  sudoku gen --variant thermo --difficulty hard --timeout 60s -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().StringVarP(&genVariant, "variant", "r", "standard", "Variant rule (see 'sudoku list')")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "easy", "Difficulty tier: easy, medium, hard")
	genCmd.Flags().IntVarP(&genNumber, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = time-seeded)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 0, "Override per-attempt timeout")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	tier, ok := generator.ParseDifficulty(genDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", genDifficulty)
	}

	cfg := generator.DefaultConfig(tier)
	if genTimeout > 0 {
		cfg.AttemptTimeout = genTimeout
	}

	var results []*generator.Result
	for i := 0; i < genNumber; i++ {
		r, err := rule.New(genVariant, rule.Options{})
		if err != nil {
			return err
		}
		if genSeed != 0 {
			cfg.Seed = genSeed + int64(i)
		}

		res, err := generator.New(cfg, r).Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if genOutput != "" {
			results = append(results, res)
			continue
		}

		fmt.Printf("Puzzle #%d (%s, %s, %d clues):\n", i+1, r.Name(), tier, res.Clues)
		fmt.Println(res.Puzzle.Format())
		fmt.Println("\nSolution:")
		fmt.Println(res.Solution.Format())
		fmt.Println()
	}

	if genOutput != "" {
		filename := genOutput
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, results); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", len(results), filename)
	}

	return nil
}

// writeHTML renders puzzles one per printable page.
func writeHTML(filename string, results []*generator.Result) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	boxSize := 3
	if len(results) > 0 && results[0].Metadata.BoxSize > 0 {
		boxSize = results[0].Metadata.BoxSize
	}

	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Sudoku Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .constraints {
            color: #666;
            font-size: 0.9em;
        }
        .sudoku-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .sudoku-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .sudoku-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .sudoku-grid td.empty {
            color: #ccc;
        }
        .sudoku-grid tr:nth-child(%dn) td {
            border-bottom: 2px solid #000;
        }
        .sudoku-grid td:nth-child(%dn) {
            border-right: 2px solid #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`, boxSize, boxSize)
	if err != nil {
		return err
	}

	for i, res := range results {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>%s Puzzle #%d</h1>
        <p class="constraints">%s</p>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, res.Metadata.Name, i+1, res.Metadata.Description, gridToHTML(res.Puzzle), gridToHTML(res.Solution))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// gridToHTML converts a grid to an HTML table representation.
func gridToHTML(g *grid.Grid) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"sudoku-grid\"><table>")

	for row := 0; row < g.Size(); row++ {
		sb.WriteString("<tr>")
		for col := 0; col < g.Size(); col++ {
			val := g.Value(row, col)
			if val == grid.EmptyCell {
				sb.WriteString("<td class=\"empty\">·</td>")
			} else {
				sb.WriteString(fmt.Sprintf("<td>%d</td>", val))
			}
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
