package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// LoadDefaults reads option defaults from a TOML file. Top-level
// entries match global option keys; a table named after a sub-command
// applies to that command's options. Call before Parse. Unknown keys
// produce warnings, not errors; only a missing or malformed file is
// reported as an error.
//
//	opt = "val"
//	retries = 3
//
//	[build]
//	target = "release"
func (a *App) LoadDefaults(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cli: bad defaults file %s: %w", path, err)
	}

	for key, raw := range doc {
		if table, ok := raw.(map[string]any); ok {
			cmd := a.findCmd(key)
			if cmd == nil {
				a.warnf("defaults for unknown command ignored: %s", key)
				continue
			}
			for k, v := range table {
				a.applyDefault(&cmd.schema, k, v)
			}
			continue
		}
		a.applyDefault(&a.schema, key, raw)
	}
	return nil
}

func (a *App) findCmd(name string) *Command {
	for _, c := range a.cmds {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (a *App) applyDefault(s *schema, key string, raw any) {
	o := s.findKey(key)
	if o == nil {
		a.warnf("default for unknown option ignored: %s", key)
		return
	}
	val, ok := defaultString(raw)
	if !ok {
		a.warnf("unsupported default value type for %s", key)
		return
	}
	o.def = val
}

// findKey locates an option or positional by result key.
func (s *schema) findKey(key string) *Option {
	for _, o := range s.opts {
		if o != nil && o.key == key {
			return o
		}
	}
	for _, o := range s.args {
		if o.key == key {
			return o
		}
	}
	return nil
}

func defaultString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case bool:
		if v {
			return "1", true
		}
		return "0", true
	}
	return "", false
}
