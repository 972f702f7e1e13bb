package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/keel/bstr"
	"github.com/dshills/keel/numfmt"
	"github.com/dshills/keel/omap"
)

// Values is the parse result: an ordered map from option key to the
// accumulated string value. Flags hold a decimal occurrence count,
// multi values a ";"-joined list.
type Values struct {
	m omap.Map[bstr.Str, bstr.Str]
}

func newValues() *Values {
	return &Values{m: omap.NewFunc[bstr.Str, bstr.Str](keyCompare)}
}

func keyCompare(a, b bstr.Str) int { return a.Compare(&b) }

// Len reports the number of stored keys.
func (v *Values) Len() int { return v.m.Len() }

// Has reports whether key was stored.
func (v *Values) Has(key string) bool {
	return v.m.Contains(bstr.FromString(key))
}

// Get returns the stored value for key.
func (v *Values) Get(key string) (string, bool) {
	s, ok := v.m.Get(bstr.FromString(key))
	if !ok {
		return "", false
	}
	return s.String(), true
}

// List returns the value for key split on ";", or nil when absent.
func (v *Values) List(key string) []string {
	s, ok := v.Get(key)
	if !ok {
		return nil
	}
	return strings.Split(s, ";")
}

// Count returns a flag's occurrence count, 0 when absent or non-numeric.
func (v *Values) Count(key string) int {
	s, ok := v.m.Get(bstr.FromString(key))
	if !ok {
		return 0
	}
	n, err := numfmt.ParseUint(s.Bytes(), 10)
	if err != nil {
		return 0
	}
	return int(n)
}

// Each visits stored pairs in key order until fn returns false.
func (v *Values) Each(fn func(key, value string) bool) {
	v.m.Each(func(k bstr.Str, val *bstr.Str) bool {
		return fn(k.String(), val.String())
	})
}

func (v *Values) set(key, val string) {
	v.m.Set(bstr.FromString(key), bstr.FromString(val))
}

func (v *Values) accum(key, val string) {
	k := bstr.FromString(key)
	if p := v.m.Find(k); p != nil {
		p.AddByte(';')
		p.AddString(val)
		return
	}
	v.m.Set(k, bstr.FromString(val))
}

func (v *Values) bump(key string) {
	k := bstr.FromString(key)
	if p := v.m.Find(k); p != nil {
		n, err := numfmt.ParseUint(p.Bytes(), 10)
		if err != nil {
			n = 0
		}
		p.SetUint(n + 1)
		return
	}
	v.m.Set(k, bstr.FromString("1"))
}

func (v *Values) remove(key string) {
	v.m.Remove(bstr.FromString(key))
}

// Builtin triggers surface as sentinel errors from token dispatch so
// the main loop can stop parsing and render.
var (
	errShowHelp        = errors.New("show help")
	errShowHelpGeneral = errors.New("show general help")
	errShowVersion     = errors.New("show version")
)

type parseState struct {
	app       *App
	res       *Values
	cur       *Option
	prevMulti *Option
	cmd       *Command
	args      []*Option
	argNum    int
	valNum    int
	endOpts   bool
}

// Parse processes argv, adopting argv[0] as the program name unless
// SetProgram overrode it. The boolean result is false when parsing
// stopped on help, version, or (in NoExit mode) an error; errors can
// be distinguished with Errored.
func (a *App) Parse(argv []string) (*Values, bool) {
	a.errored = false
	if len(argv) > 0 {
		if a.prog == "" {
			a.prog = filepath.Base(argv[0])
		}
		argv = argv[1:]
	}

	// Builtins win over everything else, so help renders even when the
	// command line is otherwise invalid.
	if action, cmd := a.scanBuiltins(argv); action != nil {
		return nil, a.runBuiltin(action, cmd)
	}

	st := &parseState{app: a, res: newValues(), args: a.args}
	for _, tok := range argv {
		if err := st.token(tok); err != nil {
			switch err {
			case errShowHelp, errShowHelpGeneral, errShowVersion:
				return nil, a.runBuiltin(err, st.cmd)
			default:
				return nil, a.errorf("%s", err)
			}
		}
	}
	if err := st.finish(); err != nil {
		return nil, a.errorf("%s", err)
	}
	return st.res, true
}

// scanBuiltins looks for standalone builtin tokens before "--". A
// sub-command name seen earlier selects command-specific help.
func (a *App) scanBuiltins(argv []string) (error, *Command) {
	var cmd *Command
	for _, tok := range argv {
		switch {
		case tok == "--":
			return nil, nil
		case tok == "-h" || tok == "--help":
			return errShowHelp, cmd
		case tok == "--help-general":
			return errShowHelpGeneral, cmd
		case tok == "--version" && a.version != "":
			return errShowVersion, cmd
		case !strings.HasPrefix(tok, "-") && cmd == nil:
			for _, c := range a.cmds {
				if c.name == tok {
					cmd = c
					break
				}
			}
		}
	}
	return nil, nil
}

func (a *App) runBuiltin(action error, cmd *Command) bool {
	switch action {
	case errShowHelpGeneral:
		a.printGeneralHelp()
	case errShowVersion:
		a.printVersion()
	default:
		a.printHelp(cmd)
	}
	if !a.noExit {
		a.exit(0)
	}
	return false
}

func (st *parseState) token(tok string) error {
	if !st.endOpts {
		switch tok {
		case "-.":
			if st.cur != nil && st.cur.kind == optArg || st.cur == nil && st.prevMulti != nil {
				st.argNum++
			}
			st.cur, st.prevMulti = nil, nil
			st.valNum = 0
			return nil
		case "--":
			st.endOpts = true
			st.cur = nil
			st.valNum = 0
			return nil
		}
	}

	if st.cur != nil {
		if strings.HasPrefix(tok, "-") && st.valNum > 0 && !st.endOpts {
			if st.cur.kind == optArg && st.cur.multi {
				st.prevMulti = st.cur
			}
			st.cur = nil
		} else {
			return st.storeValue(st.cur, tok)
		}
	}

	if !st.endOpts && strings.HasPrefix(tok, "--") {
		return st.longOption(tok[2:])
	}
	if !st.endOpts && len(tok) > 1 && tok[0] == '-' {
		return st.shortCluster(tok)
	}
	return st.positional(tok)
}

func (st *parseState) lookupOpt(name string) *Option {
	if st.cmd != nil {
		if o := st.cmd.lookup(name); o != nil {
			return o
		}
	}
	return st.app.lookup(name)
}

func (st *parseState) longOption(body string) error {
	name, val := body, ""
	hasVal := false
	if i := strings.IndexByte(body, '='); i >= 0 {
		name, val, hasVal = body[:i], body[i+1:], true
	}

	o := st.lookupOpt("--" + name)
	if o == nil {
		if rest, ok := strings.CutPrefix(name, "no-"); ok {
			// The reset form names the option without dashes, so a
			// short-only option resets through its short alias.
			t := st.lookupOpt("--" + rest)
			if t == nil {
				t = st.lookupOpt("-" + rest)
			}
			if t != nil {
				if hasVal {
					return fmt.Errorf("Value not allowed with reset option: --%s", name)
				}
				st.res.remove(t.key)
				return nil
			}
		}
		return fmt.Errorf("Unknown option: --%s", name)
	}

	if o.kind == optFlag {
		if hasVal {
			return fmt.Errorf("Unexpected value for flag: --%s", name)
		}
		if act := builtinAction(o.key); act != nil {
			return act
		}
		st.res.bump(o.key)
		return nil
	}
	if hasVal {
		if err := validate(o, val); err != nil {
			return err
		}
		st.store(o, val)
		return nil
	}
	st.cur = o
	st.valNum = 0
	return nil
}

func (st *parseState) shortCluster(tok string) error {
	for i := 1; i < len(tok); i++ {
		c := tok[i]
		o := st.lookupOpt("-" + string(c))
		if o == nil {
			return fmt.Errorf("Unknown option: -%c", c)
		}

		if o.kind == optFlag {
			if i+1 < len(tok) && tok[i+1] == '=' {
				return fmt.Errorf("Unexpected value for flag: -%c", c)
			}
			if act := builtinAction(o.key); act != nil {
				return act
			}
			st.res.bump(o.key)
			continue
		}

		switch {
		case i == len(tok)-1:
			st.cur = o
			st.valNum = 0
		case tok[i+1] == '=':
			val := tok[i+2:]
			if err := validate(o, val); err != nil {
				return err
			}
			st.store(o, val)
		case i == 1:
			val := tok[i+1:]
			if err := validate(o, val); err != nil {
				return err
			}
			st.store(o, val)
		default:
			return fmt.Errorf("Possible typo: use -%c=VALUE to pass a value in combined options", c)
		}
		return nil
	}
	return nil
}

func (st *parseState) positional(tok string) error {
	if st.prevMulti != nil {
		st.cur = st.prevMulti
		st.prevMulti = nil
		return st.storeValue(st.cur, tok)
	}

	if st.argNum < len(st.args) {
		arg := st.args[st.argNum]
		if err := validate(arg, tok); err != nil {
			return err
		}
		if arg.multi {
			st.res.accum(arg.key, tok)
			st.cur = arg
			st.valNum++
		} else {
			st.res.set(arg.key, tok)
			st.argNum++
		}
		return nil
	}

	if len(st.app.cmds) > 0 && st.cmd == nil {
		for _, c := range st.app.cmds {
			if c.name == tok {
				st.cmd = c
				st.args = c.args
				st.argNum = 0
				st.res.set(keyCommand, tok)
				return nil
			}
		}
		return fmt.Errorf("Unknown command: %s", tok)
	}
	return fmt.Errorf("Unexpected argument: %s", tok)
}

func (st *parseState) storeValue(o *Option, tok string) error {
	if err := validate(o, tok); err != nil {
		return err
	}
	if o.kind == optArg || o.multi {
		st.res.accum(o.key, tok)
		st.valNum++
		return nil
	}
	st.res.set(o.key, tok)
	st.cur = nil
	st.valNum = 0
	return nil
}

func (st *parseState) store(o *Option, val string) {
	if o.multi {
		st.res.accum(o.key, val)
	} else {
		st.res.set(o.key, val)
	}
}

func (st *parseState) finish() error {
	for i := st.argNum; i < len(st.args); i++ {
		arg := st.args[i]
		if arg.required && !st.res.Has(arg.key) {
			return fmt.Errorf("Missing required argument: %s", arg.key)
		}
	}
	if err := st.checkRequiredOpts(st.app.opts); err != nil {
		return err
	}
	if st.cmd != nil {
		if err := st.checkRequiredOpts(st.cmd.opts); err != nil {
			return err
		}
	}
	if len(st.app.cmds) > 0 && st.cmd == nil {
		return errors.New("Missing required command")
	}

	st.applyDefaults(st.app.opts)
	if st.cmd != nil {
		st.applyDefaults(st.cmd.opts)
	}
	st.applyDefaults(st.args)
	return nil
}

func (st *parseState) checkRequiredOpts(opts []*Option) error {
	for _, o := range opts {
		if o != nil && o.required && !st.res.Has(o.key) {
			return fmt.Errorf("Missing required option: %s", o.names[len(o.names)-1])
		}
	}
	return nil
}

func (st *parseState) applyDefaults(opts []*Option) {
	for _, o := range opts {
		if o != nil && o.def != "" && !st.res.Has(o.key) {
			st.res.set(o.key, o.def)
		}
	}
}

func builtinAction(key string) error {
	switch key {
	case keyHelp:
		return errShowHelp
	case keyHelpGeneral:
		return errShowHelpGeneral
	case keyVersion:
		return errShowVersion
	}
	return nil
}

func validate(o *Option, val string) error {
	if o.numeric {
		digits := strings.TrimPrefix(val, "-")
		if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
			return errors.New("Value must be numeric")
		}
		if o.maxLen > 0 && len(digits) > o.maxLen {
			return fmt.Errorf("Numeric value too long (max digits: %d)", o.maxLen)
		}
	} else if o.maxLen > 0 && len(val) > o.maxLen {
		return fmt.Errorf("Value too long (max: %d)", o.maxLen)
	}
	if len(o.choices) > 0 {
		for _, c := range o.choices {
			if c == val {
				return nil
			}
		}
		return fmt.Errorf("Invalid value: %s", val)
	}
	return nil
}

func notDigit(r rune) bool { return r < '0' || r > '9' }
