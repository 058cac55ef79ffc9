package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance("omar", "omar"))
	assert.Equal(t, 3, Distance("kitten", "sitting"))
	assert.Equal(t, 4, Distance("", "omar"))
	assert.Equal(t, 1, Distance("a", "b"))
}

func TestRatio(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		for _, s := range []string{"a", "omar", "mohammad al rashid"} {
			assert.Equal(t, 1.0, Ratio(s, s))
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Ratio("kitten", "sitting"), Ratio("sitting", "kitten"))
	})

	t.Run("empty strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
		assert.Equal(t, 0.0, Ratio("", "omar"))
		assert.Equal(t, 0.0, Ratio("omar", ""))
	})

	t.Run("known value", func(t *testing.T) {
		// distance 3, longer length 7
		assert.InDelta(t, 4.0/7.0, Ratio("kitten", "sitting"), 1e-9)
	})
}

func TestJaro(t *testing.T) {
	t.Run("identical", func(t *testing.T) {
		assert.Equal(t, 1.0, Jaro("omar", "omar"))
		assert.Equal(t, 1.0, Jaro("a", "a"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaro("", "omar"))
		assert.Equal(t, 0.0, Jaro("omar", ""))
		assert.Equal(t, 0.0, Jaro("", ""))
	})

	t.Run("disjoint alphabets", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaro("abc", "xyz"))
	})

	t.Run("single character window", func(t *testing.T) {
		// window clamps to 0, so single chars only match in place
		assert.Equal(t, 0.0, Jaro("a", "b"))
		assert.Equal(t, 1.0, Jaro("a", "a"))
	})

	t.Run("classic transposition case", func(t *testing.T) {
		// 6 matches, 1 transposition: (1 + 1 + 5/6) / 3
		assert.InDelta(t, 0.9444444444, Jaro("martha", "marhta"), 1e-9)
	})
}

func TestJaroWinkler(t *testing.T) {
	t.Run("identical yields exactly one", func(t *testing.T) {
		assert.Equal(t, 1.0, JaroWinkler("mohammad", "mohammad"))
	})

	t.Run("prefix bonus", func(t *testing.T) {
		jaro := Jaro("martha", "marhta")
		// shared prefix "mar" = 3 characters
		want := jaro + 0.1*3*(1-jaro)
		assert.InDelta(t, want, JaroWinkler("martha", "marhta"), 1e-9)
	})

	t.Run("prefix bonus caps at four characters", func(t *testing.T) {
		jaro := Jaro("abcdefgh", "abcdefhg")
		want := jaro + 0.1*4*(1-jaro)
		assert.InDelta(t, want, JaroWinkler("abcdefgh", "abcdefhg"), 1e-9)
	})

	t.Run("approximately symmetric", func(t *testing.T) {
		assert.InDelta(t, JaroWinkler("dwayne", "duane"), JaroWinkler("duane", "dwayne"), 1e-9)
	})

	t.Run("no match no bonus", func(t *testing.T) {
		assert.Equal(t, 0.0, JaroWinkler("abc", "xyz"))
	})
}

func TestTokenSimilarity(t *testing.T) {
	t.Run("strong partial name overlap", func(t *testing.T) {
		assert.Greater(t, TokenSimilarity("Mohammad Al Rashid", "Al Rashid"), 0.8)
	})

	t.Run("identical phrases", func(t *testing.T) {
		assert.Equal(t, 1.0, TokenSimilarity("Omar Khalil", "omar khalil"))
	})

	t.Run("normalizes before tokenizing", func(t *testing.T) {
		assert.Equal(t, 1.0, TokenSimilarity("Àl-Rashid", "al rashid"))
	})

	t.Run("no tokens", func(t *testing.T) {
		assert.Equal(t, 0.0, TokenSimilarity("", "omar"))
		assert.Equal(t, 0.0, TokenSimilarity("omar", "  !"))
	})

	t.Run("averaged over first side", func(t *testing.T) {
		// asymmetric by construction: every token of the shorter side finds a
		// perfect partner, the longer side pays for its extra token
		short := TokenSimilarity("Al Rashid", "Mohammad Al Rashid")
		long := TokenSimilarity("Mohammad Al Rashid", "Al Rashid")
		assert.Equal(t, 1.0, short)
		assert.Less(t, long, short)
	})
}
