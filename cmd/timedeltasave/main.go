// Command timedeltasave writes 2^log2Q raw timestamp deltas, each
// truncated to mode+1 bytes, to filename, followed by an 8-byte xxhash
// footer over the written payload so a reader can verify the file
// round-tripped losslessly.
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/egione/enranda"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("timedeltasave: %s", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: timedeltasave mode log2Q filename")
	}
	mode, err := strconv.Atoi(args[0])
	if err != nil || mode < 0 || mode > 7 {
		return fmt.Errorf("mode must be an integer in [0, 7]")
	}
	log2Q, err := strconv.Atoi(args[1])
	if err != nil || log2Q < 0 || log2Q > 24 {
		return fmt.Errorf("log2Q must be an integer in [0, 24]")
	}
	filename := args[2]

	width := mode + 1
	count := 1 << uint(log2Q)
	source := enranda.NewMonotonicTimestampSource()

	payload := make([]byte, count*width)
	prev := source.Read()
	var scratch [8]byte
	for i := 0; i < count; i++ {
		cur := source.Read()
		binary.LittleEndian.PutUint64(scratch[:], cur-prev)
		prev = cur
		copy(payload[i*width:(i+1)*width], scratch[:width])
	}

	digest := xxhash.Sum64(payload)
	var footer [8]byte
	binary.LittleEndian.PutUint64(footer[:], digest)
	out := append(payload, footer[:]...)

	return os.WriteFile(filename, out, 0o644)
}
