package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	hashed, err := HashPassword("secret1", 0)
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret1", hashed)

	assert.NoError(t, verifier.Compare(hashed, "secret1"))
	assert.Error(t, verifier.Compare(hashed, "wrong"))
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	// The random salt means equal inputs never produce equal hashes;
	// verification only works through the comparison function.
	first, err := HashPassword("secret1", 0)
	require.NoError(t, err)
	second, err := HashPassword("secret1", 0)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	verifier := NewBcryptVerifier()
	assert.NoError(t, verifier.Compare(first, "secret1"))
	assert.NoError(t, verifier.Compare(second, "secret1"))
}

func TestHashPasswordTooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'p'
	}
	_, err := HashPassword(string(long), 0)
	assert.Error(t, err)
}
