package memory

// ExpansionCost computes C(w) = 3*w + floor(w*w/512), the total cost of
// memory sized at w words. Grounded on the teacher's memoryGasCost
// (gas.go), which computes the same linear+quadratic formula against
// params.MemoryGas (3) and params.QuadCoeffDiv (512) but only returns
// the delta; here the two halves are split so the interpreter can charge
// exactly the delta per spec §4.3.
func ExpansionCost(words uint64) uint64 {
	return 3*words + (words*words)/512
}

// ExpansionDelta returns C(toWords) - C(fromWords), the gas charged to
// grow memory from fromWords to toWords words. Returns 0 if there is no
// growth (toWords <= fromWords).
func ExpansionDelta(fromWords, toWords uint64) uint64 {
	if toWords <= fromWords {
		return 0
	}
	return ExpansionCost(toWords) - ExpansionCost(fromWords)
}
