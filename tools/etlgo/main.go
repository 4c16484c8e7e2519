package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cbiffle/etl-sub000/tools/bffgen"
	"github.com/cbiffle/etl-sub000/tools/emu"
	"github.com/cbiffle/etl-sub000/tools/mkimg"
)

const usageString = `etlgo is a tool for development of bare metal ARMv7-M programs.

Usage:

	%s <command> [arguments]

The commands are:

	bffgen   expand a register description into Go accessor code
	mkimg    convert a linked elf to a flash image
	emu      run a linked elf under an emulator and report its verdict
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "bffgen":
		bffgen.Main(flag.Args())
	case "mkimg":
		mkimg.Main(flag.Args())
	case "emu":
		emu.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
