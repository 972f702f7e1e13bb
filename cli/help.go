package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// helpColumnCap bounds the aligned option column; anything wider puts
// its help text on the next line.
const helpColumnCap = 30

const generalHelp = `Argument syntax:

  --name            long flag
  --name=VALUE      long option with inline value
  --name VALUE      long option with following value
  --no-name         reset: remove a previously given option
  -x                short flag
  -xy               combined short flags
  -x=VALUE -xVALUE  short option with value
  -xy=VALUE         combined short options; only the last may take the value
  --                end of options; remaining tokens are positional
  -.                end the current multi-value positional

Flags repeat to increment their count. Multi-value options accumulate,
joined by ";".
`

func (a *App) printVersion() {
	if a.version == "" {
		fmt.Fprintln(a.stdout, a.progName())
		return
	}
	fmt.Fprintf(a.stdout, "%s version %s\n", a.progName(), a.version)
}

func (a *App) printGeneralHelp() {
	fmt.Fprint(a.stdout, generalHelp)
}

// printHelp renders usage, description, and the option, argument, and
// command tables. A non-nil cmd selects command-specific help.
func (a *App) printHelp(cmd *Command) {
	out := a.stdout
	width := terminalWidth()

	fmt.Fprintf(out, "Usage: %s%s\n", a.progName(), a.usageTail(cmd))
	if a.descr != "" && cmd == nil {
		fmt.Fprintf(out, "\n%s\n", a.descr)
	}
	if cmd != nil && cmd.help != "" {
		fmt.Fprintf(out, "\n%s\n", cmd.help)
	}

	opts := a.visibleOpts(cmd)
	if len(opts) > 0 {
		fmt.Fprint(out, "\nOptions:\n")
		col := optionColumn(opts)
		for _, o := range opts {
			if o == nil {
				fmt.Fprintln(out)
				continue
			}
			writeRow(out, o.display(), o.help, col, width)
		}
	}

	args := a.args
	if cmd != nil {
		args = cmd.args
	}
	if argsHaveHelp(args) {
		fmt.Fprint(out, "\nArguments:\n")
		col := 0
		for _, arg := range args {
			col = max(col, min(runewidth.StringWidth(arg.helpName), helpColumnCap))
		}
		for _, arg := range args {
			writeRow(out, arg.helpName, arg.help, col, width)
		}
	}

	if cmd == nil && len(a.cmds) > 0 {
		fmt.Fprint(out, "\nCommands:\n")
		col := 0
		for _, c := range a.cmds {
			col = max(col, min(runewidth.StringWidth(c.name), helpColumnCap))
		}
		for _, c := range a.cmds {
			writeRow(out, c.name, c.help, col, width)
		}
	}

	if a.epilog != "" {
		fmt.Fprintf(out, "\n%s\n", a.epilog)
	}
}

func (a *App) usageTail(cmd *Command) string {
	var sb strings.Builder
	if cmd != nil {
		sb.WriteByte(' ')
		sb.WriteString(cmd.name)
	}
	sb.WriteString(" [options]")

	args := a.args
	if cmd != nil {
		args = cmd.args
	}
	for _, arg := range args {
		sb.WriteByte(' ')
		if arg.required {
			sb.WriteString(arg.helpName)
		} else {
			sb.WriteByte('[')
			sb.WriteString(arg.helpName)
			sb.WriteByte(']')
		}
		if arg.multi {
			sb.WriteString("...")
		}
	}
	if cmd == nil && len(a.cmds) > 0 {
		sb.WriteString(" <command> ...")
	}
	return sb.String()
}

// visibleOpts merges command options above the global set when a
// command is selected, separated by a blank line.
func (a *App) visibleOpts(cmd *Command) []*Option {
	if cmd == nil || len(cmd.opts) == 0 {
		return a.opts
	}
	merged := make([]*Option, 0, len(cmd.opts)+1+len(a.opts))
	merged = append(merged, cmd.opts...)
	merged = append(merged, nil)
	merged = append(merged, a.opts...)
	return merged
}

func optionColumn(opts []*Option) int {
	col := 0
	for _, o := range opts {
		if o == nil {
			continue
		}
		col = max(col, min(runewidth.StringWidth(o.display()), helpColumnCap))
	}
	return col
}

// writeRow emits one aligned table row, wrapping help text to the
// terminal width. Overlong left columns push the help to its own line.
func writeRow(out io.Writer, left, help string, col, width int) {
	indent := col + 4
	lines := wrapText(help, width-indent)

	lw := runewidth.StringWidth(left)
	if lw > col {
		fmt.Fprintf(out, "  %s\n", left)
		if help == "" {
			return
		}
		fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", indent), lines[0])
	} else {
		if help == "" {
			fmt.Fprintf(out, "  %s\n", left)
			return
		}
		fmt.Fprintf(out, "  %s%s  %s\n", left, strings.Repeat(" ", col-lw), lines[0])
	}
	for _, line := range lines[1:] {
		fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func wrapText(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func argsHaveHelp(args []*Option) bool {
	for _, arg := range args {
		if arg.help != "" {
			return true
		}
	}
	return false
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w >= 40 {
		return w
	}
	return 80
}
