// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The cinder command checks Cinder source files and reports their
// diagnostics. With no file arguments and a terminal on standard
// input, it starts a read-analyze-print loop (REPL).
//
// Options are read from the file named by -config, or from
// cinder.yaml in the current directory if it exists; flags override them.
package main // import "go.cinder.dev/cmd/cinder"

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"go.cinder.dev"
	"go.cinder.dev/bound"
	"go.cinder.dev/config"
	"go.cinder.dev/diag"
	"go.cinder.dev/repl"
	"go.cinder.dev/syntax"
)

// flags
var (
	configFile  = flag.String("config", "", "read options from `file` (default ./cinder.yaml if present)")
	modeFlag    = flag.String("mode", "", "binding mode (module, script)")
	entryFlag   = flag.String("entry", "", "name of the entry point function")
	formatFlag  = flag.String("format", "text", "diagnostic output format (text, json, textproto)")
	dumpFlag    = flag.Bool("dump", false, "print the bound tree")
	werrorFlag  = flag.Bool("Werror", false, "treat warnings as errors")
	descriptors = flag.String("descriptors", "", "comma-separated list of names of files containing FileDescriptorSet messages")
	execprog    = flag.String("c", "", "check program `prog`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("cinder: ")
	log.SetFlags(0)
	flag.Parse()

	opts, err := loadOptions()
	check(err)
	types, err := opts.Types()
	check(err)

	var files []*syntax.File
	switch {
	case *execprog != "":
		f, err := syntax.Parse("cmdline", *execprog, syntax.ScriptMode)
		if err != nil {
			log.Print(err)
			return 1
		}
		files = append(files, f)
	case flag.NArg() > 0:
		files, err = cinder.ParseFiles(flag.Args(), syntax.ScriptMode)
		if err != nil {
			log.Print(err)
			return 1
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Println("Welcome to Cinder (go.cinder.dev)")
		s := repl.NewSession(types, opts.Compiler().Options)
		s.Dump = *dumpFlag
		repl.REPL(s)
		return 0
	default:
		src, err := io.ReadAll(os.Stdin)
		check(err)
		f, err := syntax.Parse("<stdin>", src, syntax.ScriptMode)
		if err != nil {
			log.Print(err)
			return 1
		}
		files = append(files, f)
	}

	res := cinder.Compile(types, files, opts.Compiler())
	if *dumpFlag {
		bound.Dump(os.Stdout, res.Program)
	}
	switch *formatFlag {
	case "text":
		res.Format(os.Stderr)
	case "json", "textproto":
		data, err := encode(res.Diagnostics, *formatFlag)
		check(err)
		os.Stdout.Write(data)
		fmt.Println()
	default:
		log.Printf("unsupported -format: %s", *formatFlag)
		return 2
	}
	if res.HasErrors() {
		return 1
	}
	return 0
}

// loadOptions returns the options of the config file, overridden by flags.
func loadOptions() (*config.Options, error) {
	var opts *config.Options
	switch {
	case *configFile != "":
		o, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		opts = o
	default:
		o, err := config.Load(config.DefaultFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			opts = config.Default()
		case err != nil:
			return nil, err
		default:
			opts = o
		}
	}
	if *modeFlag != "" {
		opts.Mode = *modeFlag
	}
	if *entryFlag != "" {
		opts.Entry = *entryFlag
	}
	if *werrorFlag {
		opts.WarningsAsErrors = true
	}
	if *descriptors != "" {
		opts.Descriptors = append(opts.Descriptors, strings.Split(*descriptors, ",")...)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// encode returns the diagnostics as a protobuf Struct in the given format.
func encode(diags diag.List, format string) ([]byte, error) {
	list := make([]interface{}, len(diags))
	for i, d := range diags {
		list[i] = map[string]interface{}{
			"file":    d.Span.Start.Filename(),
			"line":    d.Span.Start.Line,
			"col":     d.Span.Start.Col,
			"level":   d.Level.String(),
			"code":    d.Code.String(),
			"message": d.Message,
		}
	}
	errs, warnings := diags.Count()
	msg, err := structpb.NewStruct(map[string]interface{}{
		"diagnostics": list,
		"errors":      errs,
		"warnings":    warnings,
	})
	if err != nil {
		return nil, err
	}
	var marshal func(proto.Message) ([]byte, error)
	switch format {
	case "textproto":
		marshal = prototext.MarshalOptions{Multiline: true, Indent: "\t"}.Marshal
	default:
		marshal = protojson.MarshalOptions{Multiline: true, Indent: "\t"}.Marshal
	}
	return marshal(msg)
}

func check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
