package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reserved result keys. The builtin help and version flags never reach
// the result map in normal runs but still need stable keys.
const (
	keyCommand     = "command"
	keyHelp        = "__help"
	keyHelpGeneral = "__help_general"
	keyVersion     = "__version"
)

type optKind uint8

const (
	optFlag optKind = iota
	optValue
	optArg
)

// Option describes one flag, value option, or positional argument.
// Builder methods return the receiver so declarations chain.
type Option struct {
	kind     optKind
	names    []string
	key      string
	helpName string
	help     string
	def      string
	choices  []string
	required bool
	multi    bool
	numeric  bool
	maxLen   int
	void     bool
}

// Required marks the option as mandatory; Parse reports an error when
// it is absent from the result.
func (o *Option) Required() *Option {
	o.required = true
	return o
}

// Multi makes repeated values accumulate joined by ";" instead of
// overwriting. On a positional it consumes the rest of the argument
// list until "-." or an option token.
func (o *Option) Multi() *Option {
	o.multi = true
	return o
}

// Numeric restricts values to an optionally signed digit string. With
// MaxLen the limit applies to the digit count, not the byte count.
func (o *Option) Numeric() *Option {
	o.numeric = true
	return o
}

// MaxLen bounds the value length in bytes, or in digits for Numeric
// options. Zero means unbounded.
func (o *Option) MaxLen(n int) *Option {
	o.maxLen = n
	return o
}

// Default sets the value stored when the option never appears.
func (o *Option) Default(val string) *Option {
	o.def = val
	return o
}

// AddChoice restricts values to a set; each call appends the tokens of
// a ";"-separated list.
func (o *Option) AddChoice(set string) *Option {
	for _, c := range strings.Split(set, ";") {
		if c != "" {
			o.choices = append(o.choices, c)
		}
	}
	return o
}

// display is the left-hand column text used in help output.
func (o *Option) display() string {
	var sb strings.Builder
	if o.kind == optArg {
		sb.WriteString(o.helpName)
	} else {
		sb.WriteString(strings.Join(o.names, ", "))
		if o.kind == optValue {
			sb.WriteByte(' ')
			sb.WriteString(o.helpName)
		}
	}
	return sb.String()
}

// schema holds the option and positional declarations shared by the
// top-level App and each sub-command. A nil entry in opts renders as a
// separator line in help output.
type schema struct {
	app  *App
	opts []*Option
	args []*Option
}

// App is a command-line processor: a schema of global options plus
// optional sub-commands, each with its own schema.
type App struct {
	schema
	prog    string
	version string
	descr   string
	epilog  string
	cmds    []*Command
	noExit  bool
	errored bool
	stdout  io.Writer
	stderr  io.Writer
	exit    func(code int)
}

// Command is a named sub-command with its own options and positionals.
// Global options remain visible while a command is selected; a command
// option with the same name shadows the global one.
type Command struct {
	schema
	name string
	help string
}

// New returns an App with the builtin -h/--help and --help-general
// flags pre-registered. --version appears once SetVersion is called.
func New(description string) *App {
	a := &App{
		descr:  description,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	a.exit = func(code int) { os.Exit(code) }
	a.schema.app = a
	a.AddFlag("-h, --help", keyHelp, "Show this help")
	a.AddFlag("--help-general", keyHelpGeneral, "Show general argument syntax")
	a.AddSep()
	return a
}

// SetProgram overrides the program name normally taken from argv[0].
func (a *App) SetProgram(name string) *App {
	a.prog = name
	return a
}

// SetVersion sets the string printed by --version, registering the
// builtin --version flag alongside the other builtins on first use.
func (a *App) SetVersion(version string) *App {
	a.version = version
	if a.lookup("--version") == nil {
		o := &Option{kind: optFlag, names: []string{"--version"}, key: keyVersion, help: "Show version"}
		for i, e := range a.opts {
			if e == nil {
				a.opts = append(a.opts[:i], append([]*Option{o}, a.opts[i:]...)...)
				return a
			}
		}
		a.opts = append(a.opts, o)
	}
	return a
}

// SetEpilog sets trailing free-form help text.
func (a *App) SetEpilog(text string) *App {
	a.epilog = text
	return a
}

// NoExit disables process termination: Parse returns false on error or
// after help output instead of calling exit. Errors are still printed.
func (a *App) NoExit(on bool) *App {
	a.noExit = on
	return a
}

// SetOutput redirects normal and error output, mainly for tests.
func (a *App) SetOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Errored reports whether a previous Parse failed in NoExit mode.
func (a *App) Errored() bool { return a.errored }

// AddCmd registers a sub-command and returns it for schema building.
func (a *App) AddCmd(name, help string) *Command {
	for _, c := range a.cmds {
		if c.name == name {
			a.warnf("duplicate command ignored: %s", name)
			return &Command{schema: schema{app: a}}
		}
	}
	c := &Command{schema: schema{app: a}, name: name, help: help}
	a.cmds = append(a.cmds, c)
	return c
}

// AddFlag registers a boolean flag. names is a comma-separated alias
// list ("-f, --flag"); key defaults to the last alias without dashes.
// The result value is the occurrence count.
func (s *schema) AddFlag(names, key, help string) *Option {
	return s.add(optFlag, names, key, "", help)
}

// AddOpt registers a value-taking option. helpName labels the value in
// help output (e.g. "<file>").
func (s *schema) AddOpt(names, key, helpName, help string) *Option {
	if helpName == "" {
		helpName = "<value>"
	}
	return s.add(optValue, names, key, helpName, help)
}

// AddArg registers a positional argument. Positionals fill in
// declaration order; a Multi positional consumes the remainder.
func (s *schema) AddArg(key, helpName, help string) *Option {
	if key == "" {
		s.app.warnf("positional argument with no key ignored")
		return &Option{void: true}
	}
	if helpName == "" {
		helpName = "<" + key + ">"
	}
	o := &Option{kind: optArg, key: key, helpName: helpName, help: help}
	s.args = append(s.args, o)
	return o
}

// AddSep inserts a blank separator line in the option help listing.
func (s *schema) AddSep() {
	s.opts = append(s.opts, nil)
}

// Add declares an option from a one-line spec: alias names, an
// optional "<value>" label, and help text separated by two or more
// spaces. A spec whose first token has no dash declares a positional.
//
//	Add("-o, --out <file>  Output file")
//	Add("-v, --verbose  Verbose output")
//	Add("input <path>  Input file")
func (s *schema) Add(spec string) *Option {
	left, help := spec, ""
	if i := strings.Index(spec, "  "); i >= 0 {
		left = spec[:i]
		help = strings.TrimSpace(spec[i:])
	}

	var names []string
	var helpName, argKey string
	for _, tok := range strings.FieldsFunc(left, func(r rune) bool {
		return r == ' ' || r == ','
	}) {
		switch {
		case tok[0] == '-':
			names = append(names, tok)
		case tok[0] == '<':
			helpName = tok
		case argKey == "" && len(names) == 0:
			argKey = tok
		default:
			s.app.warnf("bad option spec ignored: %q", spec)
			return &Option{void: true}
		}
	}

	switch {
	case argKey != "":
		return s.AddArg(argKey, helpName, help)
	case helpName != "":
		return s.AddOpt(strings.Join(names, ", "), "", helpName, help)
	default:
		return s.AddFlag(strings.Join(names, ", "), "", help)
	}
}

func (s *schema) add(kind optKind, names, key, helpName, help string) *Option {
	list, ok := parseNames(names)
	if !ok || len(list) == 0 {
		s.app.warnf("option with no usable name ignored: %q", names)
		return &Option{void: true}
	}
	if key == "" {
		key = strings.TrimLeft(list[len(list)-1], "-")
	}
	if strings.HasPrefix(key, "__") && key != keyHelp && key != keyHelpGeneral && key != keyVersion {
		s.app.warnf("reserved key ignored: %q", key)
		return &Option{void: true}
	}
	for _, name := range list {
		if s.lookup(name) != nil {
			s.app.warnf("duplicate option name ignored: %s", name)
			return &Option{void: true}
		}
		// A command option may shadow a global one, but only with the
		// same shape.
		if s != &s.app.schema {
			if g := s.app.lookup(name); g != nil && g.kind != kind {
				s.app.warnf("option %s conflicts with a global option of another type; ignored", name)
				return &Option{void: true}
			}
		}
	}
	o := &Option{kind: kind, names: list, key: key, helpName: helpName, help: help}
	s.opts = append(s.opts, o)
	return o
}

// lookup finds an option in this schema by alias ("-x" or "--name").
func (s *schema) lookup(name string) *Option {
	for _, o := range s.opts {
		if o == nil {
			continue
		}
		for _, n := range o.names {
			if n == name {
				return o
			}
		}
	}
	return nil
}

func parseNames(names string) ([]string, bool) {
	var list []string
	for _, n := range strings.Split(names, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if n == "-" {
			// A lone "-" is a permissible alias alternative; it names
			// nothing and is skipped.
			continue
		}
		if n[0] != '-' || n == "--" {
			return nil, false
		}
		if !strings.HasPrefix(n, "--") && len(n) != 2 {
			return nil, false
		}
		list = append(list, n)
	}
	return list, true
}

func (a *App) warnf(format string, args ...any) {
	fmt.Fprintf(a.stderr, "%s: WARNING: %s\n", a.progName(), fmt.Sprintf(format, args...))
}

func (a *App) errorf(format string, args ...any) bool {
	fmt.Fprintf(a.stderr, "%s: ERROR: %s\n", a.progName(), fmt.Sprintf(format, args...))
	if a.noExit {
		a.errored = true
		return false
	}
	a.exit(1)
	return false
}

func (a *App) progName() string {
	if a.prog != "" {
		return a.prog
	}
	return "program"
}
