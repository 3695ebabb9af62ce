package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from, to State
		ok       bool
	}{
		{Idle, Loading, true},
		{Idle, Loaded, false},
		{Loading, Loaded, true},
		{Loading, Failed, true},
		{Loading, Loading, false},
		{Loaded, Loaded, true},
		{Loaded, Loading, false},
		{Failed, Loading, false},
		{Failed, Loaded, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.Transition(tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			} else {
				assert.ErrorIs(t, err, ErrTransition)
				assert.Equal(t, tc.from, next)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "error", Failed.String())
	assert.Equal(t, "state(9)", State(9).String())
}
