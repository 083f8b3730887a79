package collate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBytes(t *testing.T) {
	en := ForLocale("en")
	assert.Equal(t, -1, sign(en.CompareBytes([]byte("apple"), []byte("Banana"))))
	assert.Equal(t, 1, sign(en.CompareBytes([]byte("b"), []byte("a"))))
	assert.Equal(t, 0, en.CompareBytes([]byte("same"), []byte("same")))

	// Equal under collation is not enough for 0.
	assert.NotEqual(t, 0, en.CompareBytes([]byte("a"), []byte("A")))
}

func TestLocaleDiffers(t *testing.T) {
	// Swedish sorts ä after z, English next to a.
	en := ForLocale("en")
	sv := ForLocale("sv")
	assert.Equal(t, -1, sign(en.CompareBytes([]byte("ä"), []byte("z"))))
	assert.Equal(t, 1, sign(sv.CompareBytes([]byte("ä"), []byte("z"))))
}

func TestKeyMatchesCompare(t *testing.T) {
	l := ForLocale("en")
	words := []string{"apple", "Banana", "cherry", "ä", "z", ""}
	for _, a := range words {
		for _, b := range words {
			ka := l.Key(nil, []byte(a))
			kb := l.Key(nil, []byte(b))
			if kc := sign(bytes.Compare(ka, kb)); kc != 0 {
				assert.Equal(t, kc, sign(l.CompareBytes([]byte(a), []byte(b))), "%q vs %q", a, b)
			}
		}
	}
}

func TestKeyAppends(t *testing.T) {
	key := ForLocale("en").Key([]byte{0xFF}, []byte("x"))
	require.NotEmpty(t, key)
	assert.Equal(t, byte(0xFF), key[0])
	assert.Greater(t, len(key), 1)
}

func TestSetDefault(t *testing.T) {
	defer SetDefault(enBase)

	SetDefault("sv")
	assert.Equal(t, "sv", Default())
	assert.Equal(t, 1, sign(Compare([]byte("ä"), []byte("z"))))

	SetDefault("!!")
	assert.Equal(t, enBase, Default())
}

func TestZeroLocaleFollowsDefault(t *testing.T) {
	defer SetDefault(enBase)

	var zero Locale
	assert.Equal(t, -1, sign(zero.CompareBytes([]byte("ä"), []byte("z"))))
	assert.NotEmpty(t, zero.Key(nil, []byte("x")))

	SetDefault("sv")
	assert.Equal(t, 1, sign(zero.CompareBytes([]byte("ä"), []byte("z"))))
	assert.Equal(t, ForLocale("sv").Key(nil, []byte("ä")), zero.Key(nil, []byte("ä")))
}

func sign(r int) int {
	switch {
	case r < 0:
		return -1
	case r > 0:
		return 1
	}
	return 0
}
