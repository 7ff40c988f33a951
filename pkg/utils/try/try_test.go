package try_test

import (
	"errors"
	"testing"

	"github.com/opst/synthstudio/pkg/utils/try"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	fatals  [][]any
	helpers int
}

func (r *recorder) Fatal(args ...any) {
	r.fatals = append(r.fatals, args)
}

func (r *recorder) Helper() {
	r.helpers += 1
}

func TestTo(t *testing.T) {
	t.Run("value without error is returned as it is", func(t *testing.T) {
		r := &recorder{}
		assert.Equal(t, 42, try.To(42, nil).OrFatal(r))
		assert.Empty(t, r.fatals)
		assert.Zero(t, r.helpers)

		v, err := try.To("ok", nil).Get()
		assert.Equal(t, "ok", v)
		assert.NoError(t, err)
	})

	t.Run("error is passed to Fatal after Helper", func(t *testing.T) {
		r := &recorder{}
		cause := errors.New("broken")
		assert.Zero(t, try.To(42, cause).OrFatal(r))
		assert.Equal(t, [][]any{{cause}}, r.fatals)
		assert.Equal(t, 1, r.helpers)

		v, err := try.To(42, cause).Get()
		assert.Zero(t, v)
		assert.ErrorIs(t, err, cause)
	})
}
