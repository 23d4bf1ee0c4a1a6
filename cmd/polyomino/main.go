// Command polyomino reads a shape document (see internal/shapedoc) from a
// file argument or stdin, solves the resulting exact-cover puzzle, and
// prints a colorized board coloring of the first solution found.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/polyomino/internal/game"
	"github.com/kpitt/polyomino/internal/shapedoc"
	"github.com/kpitt/polyomino/internal/solver"
	"github.com/mattn/go-isatty"
)

var pieceColors = []*color.Color{
	color.New(color.BgRed, color.FgBlack),
	color.New(color.BgGreen, color.FgBlack),
	color.New(color.BgYellow, color.FgBlack),
	color.New(color.BgBlue, color.FgWhite),
	color.New(color.BgMagenta, color.FgBlack),
	color.New(color.BgCyan, color.FgBlack),
	color.New(color.BgHiRed, color.FgBlack),
	color.New(color.BgHiGreen, color.FgBlack),
	color.New(color.BgHiYellow, color.FgBlack),
	color.New(color.BgHiBlue, color.FgBlack),
}

func main() {
	all := flag.Bool("all", false, "report the total solution count instead of printing one")
	asJSON := flag.Bool("json", false, "print the decoded solution as a flat JSON array")
	flag.Parse()

	doc, err := readDocument(flag.Arg(0))
	if err != nil {
		fatal("reading shape document", err)
	}

	entries, err := shapedoc.Parse(doc)
	if err != nil {
		fatal("parsing shape document", err)
	}
	boardASCII, pieceEntries, ok := shapedoc.Shapes(entries)
	if !ok {
		fatal("parsing shape document", fmt.Errorf("missing Board entry"))
	}

	pieces := make([]game.PieceInput, len(pieceEntries))
	for i, e := range pieceEntries {
		pieces[i] = game.PieceInput{Name: e.Name, ASCII: e.Text}
	}

	g, err := game.NewGame(boardASCII, pieces)
	if err != nil && err != game.ErrEmptyBoard {
		fatal("building game", err)
	}
	if err == game.ErrEmptyBoard {
		fmt.Fprintln(os.Stderr, "warning: board has no cells")
	}

	m := g.BuildMatrix()
	dl := solver.New(m)
	ctx := context.Background()

	if *all {
		count := len(dl.AllSolutions(ctx))
		fmt.Printf("%s %d\n", color.HiWhiteString("Solutions:"), count)
		return
	}

	solution, ok := dl.NextSolution(ctx)
	if !ok {
		color.HiRed("No solution found.")
		os.Exit(1)
	}

	decoded := g.Decode(m, solution)
	if *asJSON {
		printJSON(decoded)
		return
	}

	printBoard(g, decoded)
}

func readDocument(path string) (string, error) {
	if path == "" {
		if isTerminal(os.Stdin) {
			fmt.Fprintln(os.Stderr, "Enter a shape document (Board plus piece entries), then Ctrl+D:")
		}
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printJSON(decoded []int) {
	fmt.Print("[")
	for i, v := range decoded {
		if i > 0 {
			fmt.Print(",")
		}
		fmt.Print(v)
	}
	fmt.Println("]")
}

func fatal(msgs ...any) {
	fmt.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, msgs...)
	os.Exit(1)
}
