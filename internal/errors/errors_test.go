package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapPreservesIdentity(t *testing.T) {
	wrapped := Wrap(errSentinel, "load user")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "load user: sentinel", wrapped.Error())
}

func TestWrapfAndWithMessage(t *testing.T) {
	wrapped := WithMessage(Wrapf(errSentinel, "video %s", "abc"), "toggle like")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "toggle like: video abc: sentinel", wrapped.Error())
}

func TestWithStackFormatsStack(t *testing.T) {
	err := WithStack(errSentinel)

	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackFormatsStack")
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsFindsTypedError(t *testing.T) {
	err := Join(errSentinel, Wrap(&codedError{code: 7}, "ctx"))

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
	assert.True(t, Is(err, errSentinel))
}
