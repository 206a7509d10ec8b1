package interpreter

// readCalldata returns length bytes from calldata starting at offset,
// zero-extending past the end (spec §3 "Calldata"). offset/length are
// taken as uint64 though the stack values they came from are Word256;
// callers have already clamped to practical ranges.
func readCalldata(calldata []byte, offset, length uint64) []byte {
	out := make([]byte, length)
	if offset >= uint64(len(calldata)) {
		return out
	}
	end := offset + length
	if end > uint64(len(calldata)) {
		end = uint64(len(calldata))
	}
	copy(out, calldata[offset:end])
	return out
}
