package gap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowthPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   GrowthPolicy
		oldCap   int
		required int
		want     int
	}{
		{name: "default doubles capacity", policy: DefaultGrowth, oldCap: 10, required: 10, want: 40},
		{name: "default follows large requirement", policy: DefaultGrowth, oldCap: 10, required: 50, want: 102},
		{name: "classic", policy: ClassicGrowth, oldCap: 10, required: 10, want: 22},
		{name: "chunked below limit", policy: ChunkedGrowth(100, 64), oldCap: 10, required: 10, want: 22},
		{name: "chunked above limit", policy: ChunkedGrowth(100, 64), oldCap: 200, required: 300, want: 364},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.policy(tt.oldCap, tt.required))
		})
	}
}

func TestVector_GrowsOnlyWhenGapIsExhausted(t *testing.T) {
	v := New[rune](10)
	for i := 0; i < 9; i++ {
		require.NoError(t, v.Insert(i, 'x'))
	}
	require.Equal(t, 10, v.Cap())
	require.Zero(t, v.Stats().Grows)

	// The last free slot is never consumed without growing.
	require.NoError(t, v.Insert(9, 'y'))
	require.Equal(t, 40, v.Cap())
	require.Equal(t, 1, v.Stats().Grows)
	require.Equal(t, 9, v.Stats().Grown)
	require.Equal(t, "xxxxxxxxxy", string(v.Values()))
}

func TestVector_GrowthKeepsTailAtEnd(t *testing.T) {
	v := New[rune](6, WithGrowth(ClassicGrowth))
	require.NoError(t, v.Insert(0, []rune("abcd")...))
	require.NoError(t, v.Insert(1, []rune("XYZ")...))

	require.Equal(t, "aXYZbcd", string(v.Values()))
	require.Equal(t, 16, v.Cap())
	start, end := v.Gap()
	require.Equal(t, 4, start)
	require.Equal(t, v.Cap()-3, end)
}

func TestVector_UndersizedPolicyIsRaised(t *testing.T) {
	v := New[int](2, WithGrowth(func(int, int) int { return 0 }))
	for i := 0; i < 20; i++ {
		require.NoError(t, v.Insert(v.Len(), i))
	}
	require.Equal(t, 20, v.Len())
	require.GreaterOrEqual(t, v.Cap(), 21)
}

func TestWithGrowth_NilIsIgnored(t *testing.T) {
	v := New[int](2, WithGrowth(nil))
	require.NoError(t, v.Insert(0, 1, 2, 3))
	require.Equal(t, []int{1, 2, 3}, v.Values())
}
