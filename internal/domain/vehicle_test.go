package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngineAction_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"start", "START", "Start", "sTaRt"} {
		action, err := ParseEngineAction(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, ActionStart, action)
		assert.Equal(t, "START_VEHICLE", action.Command())
	}

	action, err := ParseEngineAction("stop")
	require.NoError(t, err)
	assert.Equal(t, ActionStop, action)
	assert.Equal(t, "STOP_VEHICLE", action.Command())
}

func TestParseEngineAction_Invalid(t *testing.T) {
	for _, raw := range []string{"STARTS", "", "GO", "START_VEHICLE"} {
		_, err := ParseEngineAction(raw)
		require.Error(t, err, "input %q", raw)
		assert.True(t, IsErrorKind(err, KindInvalidAction))
	}
}

func TestParseEngineAction_ErrorNamesTheAction(t *testing.T) {
	_, err := ParseEngineAction("STARTS")

	gwErr, ok := IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "STARTS", gwErr.Action)
	assert.Contains(t, gwErr.Info, "STARTS")
}
