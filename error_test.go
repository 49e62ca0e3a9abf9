package blogscrap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jtorra/blogscrap"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code of application errors", func(t *testing.T) {
		t.Parallel()
		err := blogscrap.Errorf(blogscrap.ENOTFOUND, "artifact not cached")
		assert.Equal(t, blogscrap.ENOTFOUND, blogscrap.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("saving: %w", blogscrap.Errorf(blogscrap.EINVALID, "bad URL"))
		assert.Equal(t, blogscrap.EINVALID, blogscrap.ErrorCode(err))
	})

	t.Run("treats non-application errors as internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, blogscrap.EINTERNAL, blogscrap.ErrorCode(errors.New("disk on fire")))
	})

	t.Run("returns empty code for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", blogscrap.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bad URL", blogscrap.ErrorMessage(blogscrap.Errorf(blogscrap.EINVALID, "bad URL")))
	assert.Equal(t, "Internal error.", blogscrap.ErrorMessage(errors.New("boom")))
}
