package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderName(t *testing.T) {
	assert.Equal(t, "Bluetooth Device AA:BB:CC:DD:EE:FF", PlaceholderName("AA:BB:CC:DD:EE:FF"))
}

func TestDevice_ResolvedIcon(t *testing.T) {
	tests := []struct {
		name     string
		device   Device
		expected string
	}{
		{
			name:     "connected with category icon uses xdg category icon",
			device:   Device{ID: "AA:BB", Icon: "audio-headset", Connected: true},
			expected: "xdg:audio-headset",
		},
		{
			name:     "connected without category icon uses active state icon",
			device:   Device{ID: "AA:BB", Connected: true},
			expected: IconConnected,
		},
		{
			name:     "disconnected with category icon still uses disabled state icon",
			device:   Device{ID: "AA:BB", Icon: "audio-headset", Connected: false},
			expected: IconDisconnected,
		},
		{
			name:     "disconnected without category icon uses disabled state icon",
			device:   Device{ID: "AA:BB"},
			expected: IconDisconnected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.device.ResolvedIcon())
		})
	}
}

func TestTarget_RawID(t *testing.T) {
	target := RawID("AA:BB:CC:DD:EE:FF")

	require.True(t, target.Valid(), "RawID target MUST be valid")
	id, err := target.ID()
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", id)
	assert.Nil(t, target.Ref(), "RawID target MUST NOT carry a device reference")
}

func TestTarget_Ref(t *testing.T) {
	dev := &Device{ID: "AA:BB", Name: "Foo", Connected: true}
	target := Ref(dev)

	require.True(t, target.Valid(), "Ref target MUST be valid")
	id, err := target.ID()
	require.NoError(t, err)
	assert.Equal(t, "AA:BB", id)
	assert.Same(t, dev, target.Ref(), "Ref target MUST expose the original record")
}

func TestTarget_Zero(t *testing.T) {
	// GOAL: Verify the zero Target fails loudly instead of resolving.
	var target Target

	assert.False(t, target.Valid(), "zero target MUST be invalid")
	_, err := target.ID()
	assert.ErrorIs(t, err, ErrInvalidTarget, "zero target MUST resolve to ErrInvalidTarget")
	assert.Nil(t, target.Ref())
}
