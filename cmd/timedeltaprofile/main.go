// Command timedeltaprofile samples a window of timestamp deltas and
// prints one of six readouts of their distribution: dyspoissonism,
// mean frequency, or a per-most-significant-bucket histogram, each in
// decimal or hex. continuous selects how many freshly sampled windows
// are printed.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/egione/enranda"
	"github.com/egione/enranda/dyspoissometer"
)

const histogramBuckets = 16

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("timedeltaprofile: %s", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: timedeltaprofile mode continuous log2Q")
	}
	mode, err := strconv.Atoi(args[0])
	if err != nil || mode < 0 || mode > 5 {
		return fmt.Errorf("mode must be an integer in [0, 5]")
	}
	continuous, err := strconv.Atoi(args[1])
	if err != nil || continuous < 0 || continuous > 3 {
		return fmt.Errorf("continuous must be an integer in [0, 3]")
	}
	log2Q, err := strconv.Atoi(args[2])
	if err != nil || log2Q < 0 || log2Q > 24 {
		return fmt.Errorf("log2Q must be an integer in [0, 24]")
	}

	source := enranda.NewMonotonicTimestampSource()
	sampleCount := 1 << uint(log2Q)

	// continuous selects how many refreshed windows are printed:
	// 0 prints a single window, 1..3 print continuous*4 windows, each
	// resampled from scratch.
	passes := 1
	if continuous > 0 {
		passes = continuous * 4
	}
	for pass := 0; pass < passes; pass++ {
		masks := sampleTimedeltas(source, sampleCount)
		if err := printReadout(mode, masks); err != nil {
			return err
		}
	}
	return nil
}

func sampleTimedeltas(source *enranda.MonotonicTimestampSource, count int) []uint16 {
	masks := make([]uint16, count)
	prev := uint16(source.Read())
	for i := range masks {
		cur := uint16(source.Read())
		masks[i] = cur - prev
		prev = cur
	}
	return masks
}

func printReadout(mode int, masks []uint16) error {
	freq := dyspoissometer.BuildFrequencyList(masks, uint16(0xFFFF))
	hex := mode%2 == 1
	switch mode / 2 {
	case 0:
		l := dyspoissometer.LogfreedomSparse[float64](freq, uint16(len(masks)), uint16(0xFFFF))
		d := dyspoissometer.Dyspoissonism(l, uint16(len(masks)), uint16(0xFFFF))
		return printValue("dyspoissonism", d, hex)
	case 1:
		freqMaxMinus1 := dyspoissometer.FreqMaxMinus1(freq)
		pop := dyspoissometer.BuildPopulationList(freq, freqMaxMinus1)
		mean := dyspoissometer.Mean[float64](pop, uint16(len(masks)))
		return printValue("mean", mean, hex)
	default:
		return printHistogram(masks, hex)
	}
}

func printValue(label string, v float64, hex bool) error {
	if hex {
		_, err := fmt.Printf("%s: %016x\n", label, uint64(v*float64(1<<32)))
		return err
	}
	_, err := fmt.Printf("%s: %f\n", label, v)
	return err
}

func printHistogram(masks []uint16, hex bool) error {
	var buckets [histogramBuckets]int
	for _, m := range masks {
		buckets[m>>12]++
	}
	format := "bucket %2d: %d\n"
	if hex {
		format = "bucket %2d: %x\n"
	}
	for i, c := range buckets {
		if _, err := fmt.Printf(format, i, c); err != nil {
			return err
		}
	}
	return nil
}
