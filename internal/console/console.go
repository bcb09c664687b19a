package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/bot"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/session"
)

const help = `Commands:
  <row> <col>    place a mark (0-based)
  again [size]   start a new game, optionally on a size×size board (3-15)
  help           show this text
  quit           leave`

// Console is a line-oriented front end for a Session.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	session *session.Session
	bot     *bot.Bot
}

// New creates a console. opponent may be nil for two local players.
func New(in io.Reader, out io.Writer, s *session.Session, opponent *bot.Bot) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		session: s,
		bot:     opponent,
	}
}

// Run loads the scoreboard and plays until the input ends, "quit" is entered
// or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	// A failed load only sets the banner.
	_ = c.session.LoadScores(ctx)
	c.render()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.botToMove() {
			if err := c.playBot(ctx); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		quit, err := c.handle(ctx, strings.Fields(c.in.Text()))
		if err != nil {
			fmt.Fprintln(c.out, err)
		}
		if quit {
			return nil
		}
	}
}

func (c *Console) botToMove() bool {
	g := c.session.Game()
	return c.bot != nil && !g.Outcome.IsTerminal() && g.CurrentTurn == c.bot.Mark
}

func (c *Console) playBot(ctx context.Context) error {
	move, err := c.bot.NextMove(ctx, c.session.Game())
	if err != nil {
		return fmt.Errorf("bot could not move: %w", err)
	}
	fmt.Fprintf(c.out, "%s plays %d %d\n", c.bot.Mark, move.Row, move.Col)
	return c.play(ctx, move.Row, move.Col)
}

func (c *Console) handle(ctx context.Context, args []string) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}

	switch strings.ToLower(args[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(c.out, help)
		return false, nil
	case "again":
		size := c.session.GridSize()
		if len(args) > 1 {
			if size, err = strconv.Atoi(args[1]); err != nil {
				return false, fmt.Errorf("grid size must be a number between %d and %d", game.MinSize, game.MaxSize)
			}
		}
		if err := c.session.PlayAgain(size); err != nil {
			return false, fmt.Errorf("grid size must be a number between %d and %d", game.MinSize, game.MaxSize)
		}
		c.render()
		return false, nil
	}

	if len(args) != 2 {
		return false, errors.New("enter a move as <row> <col>, or type help")
	}
	row, errRow := strconv.Atoi(args[0])
	col, errCol := strconv.Atoi(args[1])
	if errRow != nil || errCol != nil {
		return false, errors.New("enter a move as <row> <col>, or type help")
	}
	return false, c.play(ctx, row, col)
}

func (c *Console) play(ctx context.Context, row, col int) error {
	_, err := c.session.Play(ctx, row, col)
	switch {
	case errors.Is(err, game.ErrGameFinished):
		return errors.New("the game is over, type 'again' to play another")
	case errors.Is(err, game.ErrInvalidMove), errors.Is(err, game.ErrCellOccupied):
		return fmt.Errorf("illegal move: %w", err)
	case err != nil && !errors.Is(err, session.ErrScoreSync):
		return err
	}
	// A sync failure is shown through the banner.
	c.render()
	return nil
}

func (c *Console) render() {
	g := c.session.Game()
	x, o := c.session.Stats(game.PlayerX), c.session.Stats(game.PlayerO)

	fmt.Fprintf(c.out, "\nX  wins %d  losses %d  draws %d\n", x.Wins, x.Losses, x.Draws)
	fmt.Fprintf(c.out, "O  wins %d  losses %d  draws %d\n", o.Wins, o.Losses, o.Draws)
	if banner := c.session.Banner(); banner != "" {
		fmt.Fprintf(c.out, "!! %s\n", banner)
	}
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, g.Board.String())
	fmt.Fprintln(c.out)

	switch g.Outcome {
	case game.XWins, game.OWins:
		fmt.Fprintf(c.out, "%s wins! Type 'again [size]' to play another.\n", g.Outcome.Winner())
	case game.Draw:
		fmt.Fprintln(c.out, "It's a draw! Type 'again [size]' to play another.")
	default:
		fmt.Fprintf(c.out, "%s to move\n", g.CurrentTurn)
	}
}
