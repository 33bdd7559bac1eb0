package executor

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// stateHash builds the 64-bit sampled cycle-detection hash: robot pose,
// stars remaining, the top 4 stack frames, and the total stack length.
// It deliberately omits tile colours and the visited-tile set, which is
// an intentional over-approximation: cycles that differ only by paint or
// exploration collapse
// together, which the solver treats as "not a useful solution" anyway.
func stateHash(s *gridState, stack []frame) uint64 {
	var buf [4 + 4 + 1 + 8 + 4*2 + 8]byte
	off := 0

	binary.LittleEndian.PutUint32(buf[off:], uint32(int32(s.position.X)))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], uint32(int32(s.position.Y)))
	off += 4
	buf[off] = uint8(s.direction)
	off++
	binary.LittleEndian.PutUint64(buf[off:], uint64(s.starsRemaining))
	off += 8

	start := len(stack) - 4
	if start < 0 {
		start = 0
	}
	for _, fr := range stack[start:] {
		buf[off] = fr.funcIndex
		off++
		buf[off] = fr.instIndex
		off++
	}
	// Unused tail slots (fewer than 4 frames sampled) stay zero, which is
	// fine: they're disambiguated by the stack-length field below.
	off = len(buf) - 8
	binary.LittleEndian.PutUint64(buf[off:], uint64(len(stack)))

	return xxhash.Sum64(buf[:])
}
