package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"videoplayer/internal/platform/metrics"
	"videoplayer/internal/player"
)

const (
	invalidCommand = "Please enter a valid command, type HELP for a list of available commands."
	welcome        = "Hello and welcome to the video player, what would you like to do?"
	welcomeHint    = "Enter HELP for list of available commands or EXIT to terminate."
	goodbye        = "The video player has now terminated its execution. Thank you and goodbye!"

	// unknownCommandLabel keeps the metric label set bounded.
	unknownCommandLabel = "UNKNOWN"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	usageStyle  = lipgloss.NewStyle().Faint(true)
)

// Options controls the interactive niceties of a Shell.
type Options struct {
	// Interactive prints a prompt before each command.
	Interactive bool
	// Banner prints a welcome and goodbye message around Run.
	Banner bool
}

// Shell reads command lines and dispatches them to a Player.
type Shell struct {
	player   *player.Player
	in       *Scanner
	out      io.Writer
	log      *slog.Logger
	metrics  *metrics.Metrics
	opts     Options
	commands []command
	byName   map[string]command
}

// New returns a Shell that reads commands from in and writes to out. in must be
// the same Scanner the player reads search selections from. m may be nil.
func New(p *player.Player, in *Scanner, out io.Writer, log *slog.Logger, m *metrics.Metrics, opts Options) *Shell {
	cmds := commandTable(p)
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}
	return &Shell{
		player:   p,
		in:       in,
		out:      out,
		log:      log,
		metrics:  m,
		opts:     opts,
		commands: cmds,
		byName:   byName,
	}
}

// Run processes commands until EXIT, end of input, or ctx is done.
// It returns ctx.Err() on cancellation and the read error, if any, otherwise nil.
func (s *Shell) Run(ctx context.Context) error {
	if s.opts.Banner {
		fmt.Fprintln(s.out, bannerStyle.Render(welcome))
		fmt.Fprintln(s.out, bannerStyle.Render(welcomeHint))
	}
	err := s.loop(ctx)
	if s.opts.Banner {
		fmt.Fprintln(s.out, bannerStyle.Render(goodbye))
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.opts.Interactive {
			fmt.Fprint(s.out, promptStyle.Render("> "))
		}
		line, ok := s.in.ReadLine()
		if !ok {
			return s.in.Err()
		}
		if exit := s.Execute(line); exit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether it was EXIT.
// Blank lines are ignored.
func (s *Shell) Execute(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToUpper(fields[0]), fields[1:]

	switch name {
	case "EXIT":
		return true
	case "HELP":
		s.metrics.IncCommand(name)
		s.printHelp()
		return false
	}

	cmd, ok := s.byName[name]
	if !ok || !cmd.accepts(len(args)) {
		label := name
		if !ok {
			label = unknownCommandLabel
		}
		s.metrics.IncCommand(label)
		s.metrics.IncCommandFailure(label)
		s.log.Debug("invalid command", slog.String("command", name), slog.Int("args", len(args)))
		fmt.Fprintln(s.out, invalidCommand)
		return false
	}

	s.metrics.IncCommand(name)
	if err := cmd.run(args); err != nil {
		s.metrics.IncCommandFailure(name)
		s.log.Debug("command rejected",
			slog.String("command", name),
			slog.Any("args", args),
			slog.String("error", err.Error()))
		return false
	}
	s.log.Debug("command executed", slog.String("command", name))
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Available commands:")
	for _, c := range s.commands {
		usage := c.name
		if c.usage != "" {
			usage += " " + c.usage
		}
		fmt.Fprintf(s.out, "    %s - %s\n", usage, usageStyle.Render(c.help))
	}
	fmt.Fprintln(s.out, "    HELP - Displays help.")
	fmt.Fprintln(s.out, "    EXIT - Terminates the program execution.")
}
