package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLocationIn(t *testing.T) {
	_, err := NewLocationIn("")
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "invalid name: must not be empty", validationErr.Error())

	in, err := NewLocationIn("Lisbon")
	require.NoError(t, err)
	require.Equal(t, "Lisbon", in.Name)
}
