// Package gap implements a generic gap buffer: an ordered sequence backed by a
// single array with a movable unused region (the gap) that absorbs edits near
// the last edit point.
//
// Logical positions are 0-based indexes into the gap-free content.
// Physical indexes address the backing array directly.
//
// A Vector is not safe for concurrent use. Callers serialize access.
package gap
