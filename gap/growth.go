package gap

// GrowthPolicy returns the new backing array capacity when an insertion needs
// room for required items and the current capacity is oldCap.
//
// Results below required+1 are raised to required+1.
type GrowthPolicy func(oldCap, required int) int

// DefaultGrowth doubles the current capacity, or the requirement when that is
// larger, and then doubles again to leave headroom for a stream of small
// inserts.
func DefaultGrowth(oldCap, required int) int {
	return max(2*oldCap, required+1) * 2
}

// ClassicGrowth sizes the array to twice the requirement plus one.
func ClassicGrowth(_, required int) int {
	return (required + 1) * 2
}

// ChunkedGrowth behaves like ClassicGrowth below limit and grows by a fixed
// chunk above it, which bounds the slack kept by very large buffers.
func ChunkedGrowth(limit, chunk int) GrowthPolicy {
	return func(oldCap, required int) int {
		if required < limit {
			return ClassicGrowth(oldCap, required)
		}
		return required + chunk
	}
}

type options struct {
	growth GrowthPolicy
}

// Option configures a Vector.
type Option func(*options)

// WithGrowth replaces DefaultGrowth. A nil policy is ignored.
func WithGrowth(p GrowthPolicy) Option {
	return func(o *options) {
		if p != nil {
			o.growth = p
		}
	}
}
