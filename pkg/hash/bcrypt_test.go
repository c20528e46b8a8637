package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	// low cost keeps the test fast
	digest, err := HashPasswordWithCost("secret1", 4)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", digest)

	assert.True(t, VerifyPassword("secret1", digest))
	assert.False(t, VerifyPassword("secret2", digest))
}

func TestHashEmbedsSaltAndCost(t *testing.T) {
	t.Parallel()

	first, err := HashPasswordWithCost("secret1", 4)
	require.NoError(t, err)
	second, err := HashPasswordWithCost("secret1", 4)
	require.NoError(t, err)

	// distinct salts produce distinct digests for the same password
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$2a$04$"))

	// verification needs nothing beyond the digest itself
	assert.True(t, VerifyPassword("secret1", first))
	assert.True(t, VerifyPassword("secret1", second))
}

func TestVerifyMalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$12$tooshort"} {
		assert.False(t, VerifyPassword("secret1", digest))
	}
}
