package enranda

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputU16DrainsTrapdoorThenReaccrues(t *testing.T) {
	g, err := Init(BuildBreak, BuildFeature, newRotatingSource())
	require.NoError(t, err)
	g.Accrue(true)
	require.Equal(t, PhaseTrapdoor, g.Phase())

	for i := 0; i < trapdoorHalf-1; i++ {
		g.OutputU16()
		require.Equal(t, PhaseTrapdoor, g.Phase())
	}
	g.OutputU16()
	require.Equal(t, PhaseAccrue, g.Phase())
}

func TestOutputU32CarriesAcrossHalfBoundary(t *testing.T) {
	g := &Generator{phase: PhaseTrapdoor}
	g.uniqueList[0] = 60000
	g.uniqueList[1] = 5
	g.uniqueList[trapdoorHalf] = 10000
	g.uniqueList[trapdoorHalf+1] = 7
	v := g.OutputU32()
	// The low 16-bit lanes (60000+10000) sum past 65536; that carry must
	// land in the high lanes rather than wrap and vanish, so the result
	// differs from summing each lane mod 2^16 and concatenating.
	require.Equal(t, uint32(70000)+uint32(12)<<16, v)
}

func TestOutputU64CarriesAcrossHalfBoundary(t *testing.T) {
	g := &Generator{phase: PhaseTrapdoor}
	g.uniqueList[0] = 60000
	g.uniqueList[trapdoorHalf] = 10000
	v := g.OutputU64()
	require.Equal(t, uint64(70000), v)
}

func TestOutputBytesPairsLowHighByteOfOneDraw(t *testing.T) {
	g := &Generator{phase: PhaseTrapdoor}
	g.uniqueList[0] = 0x1234
	buf := make([]byte, 2)
	g.OutputBytes(buf)
	require.Equal(t, []byte{0x34, 0x12}, buf)
	require.EqualValues(t, 1, g.uniqueIdx)
}

func TestOutputBytesOddCountBurnsFullDrawForTrailingByte(t *testing.T) {
	g, err := Init(BuildBreak, BuildFeature, newRotatingSource())
	require.NoError(t, err)
	g.Accrue(true)
	before := g.uniqueIdx
	buf := make([]byte, 3)
	g.OutputBytes(buf)
	// One draw pairs bytes 0 and 1; a second, separate draw supplies the
	// trailing byte 2 with its upper half discarded, so three bytes cost
	// two draws rather than three.
	require.EqualValues(t, before+2, g.uniqueIdx)
}
