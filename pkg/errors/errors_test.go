package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexError(t *testing.T) {
	var err error = &IndexError{Op: "RemoveAt", Index: 7, Len: 5}
	require.True(t, errors.Is(err, ErrIndexOutOfBounds))
	require.Equal(t, "RemoveAt: index 7, len 5: lineup: index out of bounds", err.Error())

	wrapped := fmt.Errorf("cleanup: %w", err)
	var ie *IndexError
	require.True(t, errors.As(wrapped, &ie))
	require.Equal(t, uint(7), ie.Index)
	require.Equal(t, 5, ie.Len)
}
