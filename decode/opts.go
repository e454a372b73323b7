package decode

type decodeOpts struct {
	maxDepth int
	strict   bool
}

const defaultMaxDepth = 10000

type DecodeOption func(*decodeOpts)

// MaxDepth bounds how deeply arrays, maps and tags may nest.
func MaxDepth(n int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = n }
}

// Strict rejects heads whose argument is not encoded in its shortest form.
func Strict(v bool) DecodeOption {
	return func(o *decodeOpts) { o.strict = v }
}
