package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeFields(t *testing.T) {
	base := map[string]interface{}{
		"id":        float64(7),
		"email":     "ana@example.com",
		"user_type": "patient",
		"name":      "Ana",
	}

	t.Run("Overlay Wins For Profile Fields", func(t *testing.T) {
		merged := MergeFields(base, map[string]interface{}{
			"id":    float64(42),
			"phone": "11999990000",
			"name":  "Ana Souza",
		})

		assert.Equal(t, float64(7), merged["id"], "session id must be kept")
		assert.Equal(t, float64(42), merged["profile_id"])
		assert.Equal(t, "Ana Souza", merged["name"])
		assert.Equal(t, "11999990000", merged["phone"])
		assert.Equal(t, "patient", merged["user_type"])
	})

	t.Run("Null Overlay Values Are Ignored", func(t *testing.T) {
		merged := MergeFields(base, map[string]interface{}{"name": nil, "city": nil})

		assert.Equal(t, "Ana", merged["name"])
		assert.NotContains(t, merged, "city")
	})

	t.Run("Base Is Not Mutated", func(t *testing.T) {
		MergeFields(base, map[string]interface{}{"name": "Outra"})

		assert.Equal(t, "Ana", base["name"])
		assert.NotContains(t, base, "profile_id")
	})
}
