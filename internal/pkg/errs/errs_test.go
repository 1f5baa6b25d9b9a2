//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"bookwell/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSeesMarks(t *testing.T) {
	sentinel := errs.New("sentinel")
	cause := stderrors.New("driver failure")

	marked := errs.Mark(cause, sentinel)

	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, cause))

	t.Run("mark survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(marked, "while booking")
		assert.True(t, errs.Is(wrapped, sentinel))
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		other := errs.New("other")
		assert.False(t, errs.Is(marked, other))
	})

	t.Run("mark keeps the cause message", func(t *testing.T) {
		assert.Equal(t, "driver failure", marked.Error())
	})
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errs.New("sentinel")
	err := errs.Mark(nil, sentinel)
	require.Error(t, err)
	assert.True(t, errs.Is(err, sentinel))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "nothing"))
}
