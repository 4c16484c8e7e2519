// Package bffgen expands register descriptions into typed access code.
package bffgen

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cbiffle/etl-sub000/bff"
)

const usageString = `Register description expander.

Usage: %s [flags] <svdfile>

Reads a CMSIS-SVD description and writes a Go source file with the register
bank, value types, field constants and accessors. A description that fails
its consistency checks expands to nothing and the program exits nonzero, so
a go:generate build breaks instead of producing wrong accessors.

`

var (
	flags = flag.NewFlagSet("bffgen", flag.ExitOnError)

	pkgName    = flags.String("p", "", "package name (default: peripheral name lowercased)")
	outFile    = flags.String("o", "regs.go", "output file")
	periphName = flags.String("periph", "", "peripheral to expand if the description has several")
	baseAddr   = flags.String("base", "", "override the base address")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "bffgen")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	f, err := os.Open(flags.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	ps, err := bff.Parse(f)
	f.Close()
	if err != nil {
		log.Fatalln(err)
	}

	p, err := pick(ps, *periphName)
	if err != nil {
		log.Fatalln(err)
	}

	var cfg Config
	cfg.Package = *pkgName
	if *baseAddr != "" {
		cfg.Base, err = strconv.ParseUint(*baseAddr, 0, 64)
		if err != nil {
			log.Fatalln("bad base address:", err)
		}
	}

	src, err := Gen(p, cfg)
	if err != nil {
		log.Fatalln(err)
	}
	if err := os.WriteFile(*outFile, src, 0644); err != nil {
		log.Fatalln(err)
	}
}

func pick(ps []*bff.Periph, name string) (*bff.Periph, error) {
	if name == "" {
		if len(ps) != 1 {
			return nil, fmt.Errorf("description has %d peripherals, select one with -periph", len(ps))
		}
		return ps[0], nil
	}
	for _, p := range ps {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no peripheral %s in description", name)
}
