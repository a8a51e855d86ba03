package wire

// Depth limits against stack exhaustion from deeply nested input.
const (
	// MaxNodeDepth limits the nesting depth of node trees.
	MaxNodeDepth = 256

	// MaxValueDepth limits the nesting depth of maps and lists inside a
	// node's data.
	MaxValueDepth = 64
)

// checkDepth reports ErrMaxDepthExceeded once current passes max.
func checkDepth(current, max int) error {
	if current > max {
		return ErrMaxDepthExceeded
	}
	return nil
}
