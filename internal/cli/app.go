// Package cli is the interactive terminal front end: it reads one line at a
// time, runs the matching command to completion and prints the result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/osse101/bloom/internal/economy"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/metrics"
	"github.com/osse101/bloom/internal/naming"
	"github.com/osse101/bloom/internal/reward"
	"github.com/osse101/bloom/internal/state"
)

// Options configures the terminal
type Options struct {
	// Plain disables ANSI colors and screen clearing
	Plain bool
}

// App runs commands against one game
type App struct {
	out      io.Writer
	state    *state.Manager
	economy  economy.Service
	names    naming.Resolver
	registry *Registry
	style    Style
	plain    bool
	quit     bool
}

// New creates the terminal front end with the standard commands
func New(out io.Writer, m *state.Manager, econ economy.Service, names naming.Resolver, opts Options) *App {
	a := &App{
		out:      out,
		state:    m,
		economy:  econ,
		names:    names,
		registry: NewRegistry(),
		plain:    opts.Plain,
	}
	a.applyTheme(m.Theme())
	registerCommands(a.registry)
	return a
}

// userError is shown to the player as is
type userError struct {
	msg string
}

func (e *userError) Error() string { return e.msg }

func userErrorf(format string, args ...any) error {
	return &userError{msg: fmt.Sprintf(format, args...)}
}

// Greet prints the session opening: the welcome line, the login reward and
// any species identified since the last visit.
func (a *App) Greet(ctx context.Context, result *reward.Result) error {
	if result == nil || result.LastLogin == nil {
		a.println(a.style.Message(MsgWelcomeNew))
	} else {
		a.println(a.style.Message(fmt.Sprintf(MsgWelcomeBackFmt, result.LastLogin.Local().Format(time.DateTime))))
	}

	if result != nil && result.Granted {
		a.println(MsgRewardGranted)
		for _, item := range result.Seeds {
			a.printf(MsgHarvestLineFmt, item.Amount, a.names.ItemName(item.Kind, item.SpeciesID))
		}
	}

	err := a.state.Batch(ctx, func() error {
		if _, err := a.state.Garden.UpdateMaturities(ctx); err != nil {
			return err
		}
		return a.announce(ctx, "\n"+MsgIdentifiedNew)
	})
	a.println()
	return err
}

// Run reads commands until exit or end of input
func (a *App) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !a.quit {
		a.prompt()
		if !scanner.Scan() {
			logger.FromContext(ctx).Info(LogMsgInputClosed)
			a.println()
			return scanner.Err()
		}
		a.Execute(ctx, scanner.Text())
	}
	return nil
}

// Quit reports whether an exit command ran
func (a *App) Quit() bool {
	return a.quit
}

// Execute runs a single input line. Failures are printed, never returned.
func (a *App) Execute(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	defer a.println()

	cmd, ok := a.registry.Lookup(fields[0])
	if !ok {
		a.println(a.style.Error(MsgNotRecognised))
		if suggestion, ok := a.registry.Suggest(fields[0]); ok {
			a.printf(MsgDidYouMeanFmt, a.style.Command(suggestion))
		}
		return
	}

	ctx = logger.WithCommandID(ctx, logger.GenerateCommandID())
	log := logger.FromContext(ctx)
	log.Info(LogMsgCommandReceived, "command", cmd.Name(), "args", fields[1:])
	metrics.CommandsExecuted.WithLabelValues(cmd.Name()).Inc()

	err := a.state.Batch(ctx, func() error {
		return cmd.Run(ctx, a, fields[1:])
	})
	if err == nil {
		return
	}

	metrics.CommandErrors.WithLabelValues(cmd.Name()).Inc()
	var ue *userError
	if errors.As(err, &ue) {
		log.Debug(LogMsgCommandFailed, "command", cmd.Name(), "reason", ue.msg)
		a.println(a.style.Error(ue.msg))
		return
	}
	log.Error(LogMsgCommandFailed, "command", cmd.Name(), "error", err)
	a.println(a.style.Error(MsgInternalError))
}

// announce drains queued identifications and lists them. With a filter only
// those species are announced.
func (a *App) announce(ctx context.Context, message string, filter ...string) error {
	ids, err := a.state.Discovery.DrainPending(ctx, filter...)
	if len(ids) > 0 {
		if message != "" {
			a.println(a.style.Message(message))
		}
		a.println(MsgDiscovered)
		for _, id := range ids {
			a.println("\t" + a.names.PlantName(id))
		}
	}
	return err
}

func (a *App) applyTheme(theme int) {
	a.style = Style{palette: PaletteFor(theme), plain: a.plain}
}

func (a *App) prompt() {
	fmt.Fprint(a.out, a.style.Prompt(PromptText)+" ")
}

func (a *App) clearScreen() {
	if !a.plain {
		fmt.Fprint(a.out, ansiClearScreen)
	}
}

func (a *App) println(parts ...string) {
	fmt.Fprintln(a.out, strings.Join(parts, " "))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
