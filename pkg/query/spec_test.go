package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpec(t *testing.T) {
	t.Run("zero value matches everything", func(t *testing.T) {
		assert.True(t, New().Empty())
		assert.Empty(t, New().Predicates())
	})

	t.Run("absent filters add nothing", func(t *testing.T) {
		var lat *float64

		s := New().Contains("Name", "").Equals("Latitude", lat).Equals("Longitude", nil)

		assert.True(t, s.Empty())
	})

	t.Run("scope first regardless of call order", func(t *testing.T) {
		lat := 40.7128

		s := New().
			Contains("Name", "york").
			Equals("Latitude", &lat).
			Scoped("CountryId", "c-1")

		assert.Equal(t, []Predicate{
			{Field: "CountryId", Op: OpEq, Value: "c-1"},
			{Field: "Name", Op: OpContains, Value: "york"},
			{Field: "Latitude", Op: OpEq, Value: 40.7128},
		}, s.Predicates())
	})

	t.Run("specs are values", func(t *testing.T) {
		base := New().Contains("Name", "a")
		left := base.Contains("IsoCode", "US")
		right := base.Contains("IsoCode", "CA")

		assert.Len(t, base.Predicates(), 1)
		assert.Equal(t, "US", left.Predicates()[1].Value)
		assert.Equal(t, "CA", right.Predicates()[1].Value)
	})
}
