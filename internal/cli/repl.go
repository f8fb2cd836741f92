// Interactive read-eval loop for the special function evaluators.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/loriab/libcerf/internal/config"
	"github.com/loriab/libcerf/internal/format"
	"github.com/loriab/libcerf/internal/sweep"
	"github.com/loriab/libcerf/internal/ui"
)

// REPL represents an interactive evaluation session.
type REPL struct {
	cfg config.AppConfig
	fn  string
	in  io.Reader
	out io.Writer
}

// NewREPL creates a new REPL instance. The session starts on the
// configured function and inherits the tabulation grid settings for
// the table command.
//
// Parameters:
//   - cfg: The application configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(cfg config.AppConfig) *REPL {
	fn := cfg.Function
	if fn == "" {
		fn = "w"
	}
	return &REPL{
		cfg: cfg,
		fn:  fn,
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user
// input and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"cerf> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sComplex Error Functions - Interactive Mode%s           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %seval <re> <im>%s       - Evaluate the current function at re+im·i\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sf <name>%s             - Change function (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(sweep.Names(), ", "))
	fmt.Fprintf(r.out, "  %stable [from to [pts]]%s - Tabulate over a logarithmic decade grid\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s                 - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %squit%s / %sexit%s          - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "\nA bare %s<re> [im]%s pair evaluates directly.\n", ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "eval", "e":
		r.cmdEval(args)
	case "f", "fn", "function":
		r.cmdFunction(args)
	case "table", "t":
		r.cmdTable(args)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a bare point for quick evaluation
		if _, err := strconv.ParseFloat(cmd, 64); err == nil {
			r.cmdEval(parts)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdEval handles the "eval" command.
func (r *REPL) cmdEval(args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(r.out, "%sUsage: eval <re> [im]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	re, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	var im float64
	if len(args) == 2 {
		im, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
			return
		}
	}

	r.evaluate(complex(re, im))
}

// evaluate computes the current function at z and prints the result.
func (r *REPL) evaluate(z complex128) {
	f, err := sweep.Resolve(r.fn)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	start := time.Now()
	value := f(z)
	duration := time.Since(start)

	DisplayEvaluation(r.out, r.fn, z, value, duration)
}

// cmdFunction handles the "f" command.
func (r *REPL) cmdFunction(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: f <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available functions: %s\n", strings.Join(sweep.Names(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if _, err := sweep.Resolve(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown function: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available functions: %s\n", strings.Join(sweep.Names(), ", "))
		return
	}

	r.fn = name
	fmt.Fprintf(r.out, "Function changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdTable handles the "table" command. Optional arguments override
// the configured decade range and point count for this run only.
func (r *REPL) cmdTable(args []string) {
	cfg := r.cfg
	cfg.Function = r.fn

	var err error
	switch len(args) {
	case 0:
	case 2, 3:
		if cfg.From, err = strconv.ParseFloat(args[0], 64); err == nil {
			cfg.To, err = strconv.ParseFloat(args[1], 64)
		}
		if err == nil && len(args) == 3 {
			cfg.Points, err = strconv.Atoi(args[2])
		}
	default:
		err = fmt.Errorf("wrong argument count")
	}
	if err != nil || cfg.From >= cfg.To || (len(args) == 3 && cfg.Points < 1) {
		fmt.Fprintf(r.out, "%sUsage: table [from to [points]]%s (decade exponents, from < to)\n",
			ui.ColorRed(), ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "Tabulating %s%s%s over 10^%s..10^%s\n",
		ui.ColorCyan(), cfg.Function, ui.ColorReset(),
		format.Float(cfg.From), format.Float(cfg.To))

	res, err := sweep.Run(context.Background(), cfg, nil)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayTable(r.out, res)
	fmt.Fprintln(r.out)
}
