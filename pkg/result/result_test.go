package result

import (
	"errors"
	"net/http"
	"testing"

	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := Ok(42)

		assert.True(t, r.IsSuccess())
		assert.Equal(t, 42, r.Value())
		assert.NoError(t, r.Err())
		assert.Empty(t, r.Errors())
	})

	t.Run("fail keeps order", func(t *testing.T) {
		r := Fail[int](failure.Validation("Name", "a"), failure.Validation("Name", "b"))

		assert.False(t, r.IsSuccess())
		assert.Len(t, r.Errors(), 2)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(r.Err()))
	})

	t.Run("fail without errors", func(t *testing.T) {
		r := Fail[Unit]()

		assert.False(t, r.IsSuccess())
		assert.Empty(t, r.Errors())
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(r.Err()))
	})

	t.Run("of", func(t *testing.T) {
		assert.True(t, Of("x", nil).IsSuccess())
		assert.Equal(t, failure.KindFailure, failure.KindOf(Of("x", errors.New("boom")).Err()))
	})

	t.Run("map", func(t *testing.T) {
		double := func(v int) int { return v * 2 }

		assert.Equal(t, 4, Map(Ok(2), double).Value())

		failed := Map(Fail[int](failure.NotFound("City not found.")), double)
		assert.False(t, failed.IsSuccess())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(failed.Err()))
	})
}
