package opcode

// ValidJumpDests performs the one-pass scan spec §4.6 describes: walk
// the bytecode, recording every 0x5B (JUMPDEST) that occurs at an
// opcode position. PUSH immediate data is skipped over — the byte
// 0x5B appearing inside it never becomes a valid target. The result is
// immutable for the lifetime of the interpreter.
func ValidJumpDests(bytecode []byte) map[uint64]struct{} {
	dests := make(map[uint64]struct{})
	i := 0
	for i < len(bytecode) {
		b := bytecode[i]
		switch {
		case b == JUMPDEST:
			dests[uint64(i)] = struct{}{}
			i++
		case IsPush(b):
			i += 1 + PushBytes(b)
		default:
			i++
		}
	}
	return dests
}
