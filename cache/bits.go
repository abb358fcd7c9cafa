package cache

// ExtractBits returns the bits of addr strictly below bit position high and
// at or above bit position low, as an unsigned integer. Callers must keep
// 0 <= low <= high <= 32; out-of-range bounds are a programming error, not a
// runtime condition.
func ExtractBits(addr uint32, high, low uint) uint32 {
	return uint32((uint64(addr) % (1 << high)) >> low)
}
