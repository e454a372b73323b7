package diag

type Option func(*state)

// Indent writes containers over multiple lines, indenting each level by n
// spaces.
func Indent(n int) Option {
	return func(s *state) { s.indent = n }
}

func EncodeColors(c *Colors) Option {
	return func(s *state) { s.color = c.Color }
}
