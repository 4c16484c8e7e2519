// Package mkimg converts linked programs into flash images.
package mkimg

import (
	"debug/elf"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/marcinbor85/gohex"
)

const usageString = `Flash image builder.

Usage: %s [flags] <elffile>

Collects the loadable sections of a linked program into a flat flash image.
Before writing anything it verifies the boot contract of the binary: the
entry point and vector table head the hardware dereferences at reset, the
presence of every exception handler, and the symbols the reset handler
relocates by. A program that cannot boot fails here instead of on the bench.

`

var (
	flags = flag.NewFlagSet("mkimg", flag.ExitOnError)

	format  = flags.String("format", "raw", `output format: "raw", "ihex" or "uf2"`)
	outFile = flags.String("o", "", "output file (default: input name with the format suffix)")
	irqs    = flags.Int("irqs", 0, "interrupt count the vector table must cover")
	nocheck = flags.Bool("nocheck", false, "skip the boot contract checks")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "mkimg")
	flags.PrintDefaults()
}

var suffixes = map[string]string{"raw": ".bin", "ihex": ".hex", "uf2": ".uf2"}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}
	if _, ok := suffixes[*format]; !ok {
		log.Fatalln("unknown format:", *format)
	}

	infile := flags.Arg(0)
	f, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	img, err := extract(f)
	if err != nil {
		log.Fatalln(err)
	}

	if !*nocheck {
		errs := check(f, img, *irqs)
		for _, err := range errs {
			log.Println(err)
		}
		if len(errs) != 0 {
			os.Exit(1)
		}
	}

	outfile := *outFile
	if outfile == "" {
		outfile, _ = strings.CutSuffix(infile, ".elf")
		outfile += suffixes[*format]
	}
	out, err := os.Create(outfile)
	if err != nil {
		log.Fatalln(err)
	}
	if err := writeImage(out, *format, img); err != nil {
		out.Close()
		log.Fatalln(outfile+":", err)
	}
	if err := out.Close(); err != nil {
		log.Fatalln(err)
	}
}

func writeImage(w io.Writer, format string, img *image) error {
	switch format {
	case "raw":
		return img.flatten(w)
	case "ihex":
		mem := gohex.NewMemory()
		for i := range img.sections {
			s := &img.sections[i]
			if err := mem.AddBinary(uint32(s.addr), s.data); err != nil {
				return fmt.Errorf("section %s: %w", s.name, err)
			}
		}
		return mem.DumpIntelHex(w, 16)
	case "uf2":
		u := newUF2Writer(w, uint32(img.addr), uf2FamilyIDPresent, uf2FamilySTM32F4, img.size())
		if err := img.flatten(u); err != nil {
			return err
		}
		return u.Flush()
	}
	return fmt.Errorf("unknown format: %s", format)
}
