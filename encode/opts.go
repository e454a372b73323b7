package encode

type EncodeOption func(*EncState)

// ShortestFloats writes each float as the narrowest of half, single and
// double precision which holds it exactly. Infinities and NaN stay doubles.
func ShortestFloats(v bool) EncodeOption {
	return func(es *EncState) { es.shortestFloats = v }
}

// ChunkStrings writes byte and text strings longer than n bytes as
// indefinite length strings of n byte chunks. Text chunks may split a
// character. n <= 0 disables chunking.
func ChunkStrings(n int) EncodeOption {
	return func(es *EncState) { es.chunk = n }
}

// SortKeys orders map entries by the bytewise order of their encoded keys,
// as RFC 8949 core deterministic encoding requires.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
