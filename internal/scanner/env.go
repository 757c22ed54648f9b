package scanner

// envStack holds the names of the exempt environments currently open,
// innermost last.
type envStack []string

func (s *envStack) push(name string) {
	*s = append(*s, name)
}

// pop removes and returns the innermost name. ok is false when empty.
func (s *envStack) pop() (name string, ok bool) {
	n := len(*s)
	if n == 0 {
		return "", false
	}
	name = (*s)[n-1]
	*s = (*s)[:n-1]
	return name, true
}

func (s envStack) depth() int { return len(s) }
