package main

import (
	"fmt"
	"os"

	smt "github.com/tokamak-network/go-smt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <vectors.json>\n", os.Args[0])
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	vectors, err := smt.ParseVectors(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failures := 0
	for i := range vectors {
		v := &vectors[i]
		got, err := v.Run()
		if err != nil {
			fmt.Printf("vector %d: error: %v\n", i, err)
			failures++
			continue
		}
		if !got.Equal(&v.NewRoot) {
			fmt.Printf("vector %d: root mismatch: got %s, want %s\n", i, got.String(), v.NewRoot.String())
			failures++
		}
	}

	fmt.Printf("%d vectors, %d failures\n", len(vectors), failures)
	if failures > 0 {
		os.Exit(1)
	}
}
