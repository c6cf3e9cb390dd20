package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PhaethonH/scbind/normalize"
	"github.com/PhaethonH/scbind/scconfig"
	"github.com/PhaethonH/scbind/shorthand"
	"github.com/PhaethonH/scbind/vdf"
	"github.com/pkg/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("scbind", flag.ContinueOnError)
	input := fs.String("input", "", "source document (default: stdin)")
	output := fs.String("output", "", "destination VDF file (default: stdout)")
	format := fs.String("format", "yaml", "source tree reader to use: \"yaml\" (cluster-addressed) or \"shorthand\" (declarative CfgMaker-style)")
	strict := fs.Bool("strict", false, "fail on any unresolved key instead of best-effort skipping (yaml format only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, closeIn, err := openInput(*input)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer closeIn()

	var mapping *scconfig.Mapping
	switch *format {
	case "yaml":
		root, err := normalize.LoadYAML(in)
		if err != nil {
			return errors.Wrap(err, "reading source tree")
		}
		mapping, err = normalize.Export(root, *strict)
		if err != nil {
			return errors.Wrap(err, "compiling source tree")
		}
	case "shorthand":
		root, err := normalize.LoadYAML(in)
		if err != nil {
			return errors.Wrap(err, "reading source tree")
		}
		maker, err := shorthand.LoadYAML(root)
		if err != nil {
			return errors.Wrap(err, "reading shorthand source tree")
		}
		mapping, err = maker.Build()
		if err != nil {
			return errors.Wrap(err, "compiling shorthand source tree")
		}
	default:
		return fmt.Errorf("scbind: unsupported --format %q", *format)
	}

	out, closeOut, err := openOutput(*output)
	if err != nil {
		return errors.Wrap(err, "opening output")
	}
	defer closeOut()

	kv := vdf.NewOMM()
	kv.Set("controller_mappings", mapping.EncodeKV())
	if err := vdf.Dump(out, kv); err != nil {
		return errors.Wrap(err, "writing VDF")
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
