// Copyright 2016, Alessandro Gatti

// Disholtek is a disassembler for Holtek BS83B08A-3 binary code images.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/agatti/disholtek/disasm"
	"github.com/agatti/disholtek/overlay"
	"github.com/agatti/disholtek/rom"
)

func main() {
	var noLabels bool
	var output string
	var symbols string
	var verbose bool

	flag.BoolVar(&noLabels, "no-labels", false, "Do not generate labels")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.StringVar(&symbols, "m", "", ".sym symbol script to use")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one binary file, got: %v", os.Args[0], flag.Args())
	}
	binary := flag.Arg(0)

	var img *rom.Image
	var err error
	if binary == "-" {
		img, err = rom.Read(os.Stdin)
		if err != nil {
			err = &rom.ErrImage{Path: binary, Err: err}
		}
	} else {
		img, err = rom.LoadFile(binary)
	}
	if err != nil {
		log.Fatal(err)
	}

	dis := disasm.NewDisassembler()
	dis.Labels = !noLabels
	dis.Verbose = verbose

	if len(symbols) != 0 {
		dis.Symbols, err = overlay.Load(symbols)
		if err != nil {
			log.Fatal(err)
		}
	}

	listing := dis.Disassemble(img)

	out := io.Writer(os.Stdout)
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	if _, err := io.WriteString(out, listing); err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
