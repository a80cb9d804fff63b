package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleBoards = []string{
	"000000000",
	"100000000",
	"100020000",
	"120100000",
	"112102002",
	"112021200",
	"112221121",
}

func TestTransform(t *testing.T) {
	t.Run("identity leaves the board unchanged", func(t *testing.T) {
		b := mustParse(t, "120100000")
		require.Equal(t, b, Transform(b, Transformations[0]))
	})

	t.Run("rotating 90 degrees clockwise", func(t *testing.T) {
		// 1 2 0        0 1 1
		// 1 0 0   ->   0 0 2
		// 0 0 0        0 0 0
		b := mustParse(t, "120100000")
		require.Equal(t, "011002000", Transform(b, Transformations[1]).String())
	})

	t.Run("involutions return the original board", func(t *testing.T) {
		involutions := map[string]Transformation{
			"rotate 180":         Transformations[2],
			"horizontal flip":    Transformations[4],
			"vertical flip":      Transformations[5],
			"main diagonal flip": Transformations[6],
			"anti diagonal flip": Transformations[7],
		}
		for _, s := range sampleBoards {
			b := mustParse(t, s)
			for name, tr := range involutions {
				require.Equal(t, b, Transform(Transform(b, tr), tr),
					"%s applied twice should return %s", name, s)
			}
		}
	})

	t.Run("two quarter turns compose to a half turn", func(t *testing.T) {
		for _, s := range sampleBoards {
			b := mustParse(t, s)
			quarter := Transform(Transform(b, Transformations[1]), Transformations[1])
			require.Equal(t, Transform(b, Transformations[2]), quarter,
				"rotating %s by 90 twice should equal rotating by 180", s)
		}
	})
}

func TestCanonicalKey(t *testing.T) {
	t.Run("invariant under every transformation", func(t *testing.T) {
		for _, s := range sampleBoards {
			b := mustParse(t, s)
			key := CanonicalKey(b)
			for i := range Transformations {
				require.Equal(t, key, CanonicalKey(Transform(b, Transformations[i])),
					"transformation %d of %s should share the canonical key", i, s)
			}
		}
	})

	t.Run("idempotent on canonical boards", func(t *testing.T) {
		for _, s := range sampleBoards {
			key := CanonicalKey(mustParse(t, s))
			canonical := mustParse(t, string(key))
			require.Equal(t, key, CanonicalKey(canonical),
				"canonicalizing the canonical form of %s should be a fixed point", s)
		}
	})

	t.Run("empty board is its own canonical form", func(t *testing.T) {
		require.Equal(t, EmptyKey, CanonicalKey(Board{}))
	})

	t.Run("key never exceeds the raw encoding", func(t *testing.T) {
		for _, s := range sampleBoards {
			key := CanonicalKey(mustParse(t, s))
			require.LessOrEqual(t, string(key), s,
				"the canonical key is the minimum over all transformed encodings")
		}
	})
}
