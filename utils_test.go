package orderedmap

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrderedPairsEqual checks every ordered accessor against the expected keys and values.
func assertOrderedPairsEqual[K comparable, V any](
	t *testing.T, orderedMap *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	assertOrderedPairsEqualFromOldest(t, orderedMap, expectedKeys, expectedValues)
	assertOrderedPairsEqualFromNewest(t, orderedMap, expectedKeys, expectedValues)
	assertSnapshotsEqual(t, orderedMap, expectedKeys, expectedValues)
}

func assertOrderedPairsEqualFromOldest[K comparable, V any](
	t *testing.T, orderedMap *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), orderedMap.Len()) {
		i := 0
		for key, value := range orderedMap.FromOldest() {
			assert.Equal(t, expectedKeys[i], key)
			assert.Equal(t, expectedValues[i], value)
			i++
		}
		assert.Equal(t, len(expectedKeys), i)
	}
}

func assertOrderedPairsEqualFromNewest[K comparable, V any](
	t *testing.T, orderedMap *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), orderedMap.Len()) {
		i := len(expectedKeys) - 1
		for key, value := range orderedMap.FromNewest() {
			assert.Equal(t, expectedKeys[i], key)
			assert.Equal(t, expectedValues[i], value)
			i--
		}
		assert.Equal(t, -1, i)
	}
}

func assertSnapshotsEqual[K comparable, V any](
	t *testing.T, orderedMap *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	assert.Equal(t, expectedKeys, orderedMap.Keys())
	assert.Equal(t, expectedValues, orderedMap.Values())

	pairs := orderedMap.Pairs()
	if assert.Len(t, pairs, len(expectedKeys)) {
		for i, pair := range pairs {
			assert.Equal(t, expectedKeys[i], pair.Key)
			assert.Equal(t, expectedValues[i], pair.Value)
		}
	}
}

func assertLenEqual[K comparable, V any](t *testing.T, orderedMap *OrderedMap[K, V], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, orderedMap.Len())
	assert.Equal(t, expectedLen == 0, orderedMap.IsEmpty())

	// also check the list length, for good measure
	assert.Equal(t, expectedLen, len(orderedMap.Keys()))
}

func randomHexString(t *testing.T, length int) string {
	t.Helper()

	b := length / 2
	randBytes := make([]byte, b)

	n, err := rand.Read(randBytes)
	require.NoError(t, err)
	require.Equal(t, b, n)

	return hex.EncodeToString(randBytes)
}

func randomUUIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
	}
	return ids
}
