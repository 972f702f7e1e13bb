// Package main is the entry point for the keel inspection tool.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/keel/bstr"
	"github.com/dshills/keel/cli"
	"github.com/dshills/keel/omap"
	"github.com/dshills/keel/pathx"
	"github.com/dshills/keel/uniconv"
	"github.com/dshills/keel/variant"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	app := cli.New("Inspect and convert structured data with the keel containers.")
	app.SetVersion(version).NoExit(true)

	dump := app.AddCmd("dump", "Parse a JSON file and print it in dump form")
	dump.AddArg("file", "<file>", "JSON file to read").Required()

	list := app.AddCmd("ls", "List directory entries in sorted order")
	list.AddArg("dir", "<dir>", "Directory to list").Default(".")

	conv := app.AddCmd("conv", "Decode a UTF-16 file to UTF-8 on stdout")
	conv.AddFlag("-b, --be", "", "Assume big-endian when no BOM is present")
	conv.AddArg("file", "<file>", "UTF-16 file to decode").Required()

	res, ok := app.Parse(argv)
	if !ok {
		if app.Errored() {
			return 1
		}
		return 0
	}

	cmd, _ := res.Get("command")
	switch cmd {
	case "dump":
		return runDump(res)
	case "ls":
		return runList(res)
	case "conv":
		return runConv(res)
	}
	return 0
}

func runDump(res *cli.Values) int {
	path, _ := res.Get("file")
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	v, err := variant.ParseJSON(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		return 1
	}

	out := bstr.New()
	v.Dump(&out)
	os.Stdout.Write(out.Bytes())
	return 0
}

func runList(res *cli.Values) int {
	dir, _ := res.Get("dir")
	it, err := pathx.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer it.Close()

	names := omap.NewFunc[bstr.Str, struct{}](func(a, b bstr.Str) int { return a.Compare(&b) })
	name := bstr.New()
	for it.Read(&name) {
		names.Set(bstr.FromString(name.String()), struct{}{})
	}
	if it.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", it.Err())
		return 1
	}

	names.Each(func(k bstr.Str, _ *struct{}) bool {
		fmt.Println(k.String())
		return true
	})
	return 0
}

func runConv(res *cli.Values) int {
	path, _ := res.Get("file")
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out, err := uniconv.DecodeUTF16(data, res.Count("be") > 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}
