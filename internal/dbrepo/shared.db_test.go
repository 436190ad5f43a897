package dbrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdateSet(t *testing.T) {
	allowed := []string{"user_name", "email", "contact", "role"}

	t.Run("applies only allow-listed fields in allow-list order", func(t *testing.T) {
		fields := map[string]any{
			"role":      "admin",
			"user_name": "alice",
			"password":  "sneaky", // not on the allow-list
			"user_id":   99,       // identity is never updatable
		}

		set, args := buildUpdateSet(fields, allowed)

		assert.Equal(t, "user_name = $1, role = $2", set)
		assert.Equal(t, []any{"alice", "admin"}, args)
	})

	t.Run("empty effective field set yields no clause", func(t *testing.T) {
		set, args := buildUpdateSet(map[string]any{"bogus": 1}, allowed)
		assert.Empty(t, set)
		assert.Empty(t, args)
	})

	t.Run("nil map yields no clause", func(t *testing.T) {
		set, args := buildUpdateSet(nil, allowed)
		assert.Empty(t, set)
		assert.Empty(t, args)
	})
}
