package matching

// Page returns the [offset, offset+pageSize) window of a ranked sequence.
// A window past the end returns the available remainder or nothing; negative
// offsets and non-positive page sizes return nothing. Never errors.
func Page(ranked []int64, offset, pageSize int) []int64 {
	if offset < 0 || pageSize <= 0 || offset >= len(ranked) {
		return nil
	}
	end := offset + pageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end]
}
