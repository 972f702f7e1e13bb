// Package cli provides a schema-driven command-line processor. An App
// collects flags, value options, positional arguments, and sub-commands,
// then parses an argv vector into an ordered map of key to accumulated
// string values.
//
// Token forms accepted by the parser:
//
//	--name            long flag
//	--name=value      long option with inline value
//	--name value      long option with following value
//	--no-name         reset: removes a previously stored key
//	-x                short flag
//	-xy               combined short flags
//	-x=value -xvalue  short option with value (inline or glued)
//	-xy=value         combined, where only the last may take the value
//	--                end of options; the rest is positional
//	-.                ends the current multi-value positional
//
// Flags store an occurrence count ("1", "2", ...). Single-value options
// overwrite; multi-value options and positionals accumulate joined by
// ";". A selected sub-command is stored under the key "command". Keys
// beginning with "__" are reserved for the builtin help and version
// flags.
//
// -h, --help, --help-general, and --version are recognized in a pre-scan
// before normal parsing, so help renders even when required arguments
// are missing. Errors print to standard error prefixed with the program
// name and terminate with exit code 1; NoExit(true) makes Parse return
// false instead and records the failure for Errored.
//
// Option defaults may be loaded from a TOML file with LoadDefaults.
package cli
