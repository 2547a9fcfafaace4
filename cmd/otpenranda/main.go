// Command otpenranda emits a one-time-pad-style block of entropy from
// an Enranda generator: 2^size_log2 bytes, written as binary to a file
// or as uppercase hex (with line breaks) to stdout.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/egione/enranda"
)

const hexLineBytes = 32

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("otpenranda: %s", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: otpenranda size_log2 [filename]")
	}
	sizeLog2, err := strconv.Atoi(args[0])
	if err != nil || sizeLog2 < 0 || sizeLog2 > 63 {
		return fmt.Errorf("size_log2 must be an integer in [0, 63]")
	}

	g, err := enranda.Init(enranda.BuildBreak, enranda.BuildFeature, nil)
	if err != nil {
		return err
	}
	defer g.Free()

	size := uint64(1) << uint(sizeLog2)
	buf := make([]byte, size)
	g.OutputBytes(buf)

	if len(args) == 2 {
		return os.WriteFile(args[1], buf, 0o644)
	}
	return writeHexLines(os.Stdout, buf)
}

func writeHexLines(w *os.File, buf []byte) error {
	for i := 0; i < len(buf); i += hexLineBytes {
		end := i + hexLineBytes
		if end > len(buf) {
			end = len(buf)
		}
		line := make([]byte, hex.EncodedLen(end-i))
		hex.Encode(line, buf[i:end])
		for j := range line {
			if line[j] >= 'a' && line[j] <= 'f' {
				line[j] -= 'a' - 'A'
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
