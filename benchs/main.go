package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	smt "github.com/tokamak-network/go-smt"
)

func main() {
	benchmarkInsertEmptySlots()
}

func benchmarkInsertEmptySlots() {
	f, _ := os.Create("cpu.prof")
	g, _ := os.Create("mem.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()
	defer func() { _ = pprof.WriteHeapProfile(g) }()

	// Number of insert operations per round
	n := 1000

	keys := make([]smt.Fr, n)
	values := make([]smt.Fr, n)
	siblings := make([]smt.Fr, smt.MaxLevels)

	for round := 0; round < 4; round++ {
		// Generate a key/value set once per round
		for i := 0; i < n; i++ {
			v, err := rand.Int(rand.Reader, fr.Modulus())
			if err != nil {
				panic(err)
			}
			if err := smt.FrFromBig(&keys[i], v); err != nil {
				panic(err)
			}
			values[i].SetUint64(uint64(i + 1))
		}
		fmt.Printf("Generated key set %d\n", round)

		start := time.Now()
		for i := 0; i < n; i++ {
			if _, err := smt.ProcessUpdate(smt.MaxLevels, &smt.FrZero, siblings, &smt.FrZero, &smt.FrZero, true, &keys[i], &values[i], smt.FncInsert); err != nil {
				panic(err)
			}
		}
		elapsed := time.Since(start)
		fmt.Printf("Inserted %d leaves in %v (%v per op)\n", n, elapsed, elapsed/time.Duration(n))
	}
}
