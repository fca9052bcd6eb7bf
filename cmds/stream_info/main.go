package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/cell-dissolve/dissolve"
	"github.com/unixpickle/essentials"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: stream_info [flags] <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	strips, err := dissolve.Load(args[0], dissolve.ReadStrips)
	essentials.Must(err)

	var quads int
	var emissive int
	strips.Iterate(func(strip []dissolve.Vertex) {
		if len(strip) == 4 {
			quads++
		}
		if strip[0].Emission > 0 {
			emissive++
		}
	})

	fmt.Println("Number of strips:", strips.NumStrips())
	fmt.Println("Number of vertices:", len(strips.Vertices))
	fmt.Println("Number of cells:", quads)
	fmt.Println("Number of emissive strips:", emissive)
}
