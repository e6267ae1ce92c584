package btctl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceIDs(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []string
	}{
		{
			name:     "empty payload yields empty sequence",
			payload:  "",
			expected: []string{},
		},
		{
			name:     "single device line",
			payload:  "Device AA:BB:CC:DD:EE:FF Foo Headset\n",
			expected: []string{"AA:BB:CC:DD:EE:FF"},
		},
		{
			name: "multiple devices preserve tool ordering",
			payload: "Device 11:11:11:11:11:11 Keyboard\n" +
				"Device 22:22:22:22:22:22 Mouse\n" +
				"Device 33:33:33:33:33:33 Speaker\n",
			expected: []string{"11:11:11:11:11:11", "22:22:22:22:22:22", "33:33:33:33:33:33"},
		},
		{
			name: "lines without the Device prefix are ignored",
			payload: "Agent registered\n" +
				"Device AA:BB:CC:DD:EE:FF Foo\n" +
				"[bluetooth]# quit\n",
			expected: []string{"AA:BB:CC:DD:EE:FF"},
		},
		{
			name:     "device name with spaces does not leak into the id",
			payload:  "Device AA:BB:CC:DD:EE:FF My Noise Cancelling Headphones\n",
			expected: []string{"AA:BB:CC:DD:EE:FF"},
		},
		{
			name:     "blank lines are skipped",
			payload:  "\n\nDevice AA:BB:CC:DD:EE:FF Foo\n\n",
			expected: []string{"AA:BB:CC:DD:EE:FF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDeviceIDs(tt.payload))
		})
	}
}

func TestParseDeviceIDs_CountMatchesWellFormedLines(t *testing.T) {
	// GOAL: Verify N well-formed listing lines produce exactly N ids in
	// original order.
	var sb strings.Builder
	expected := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("%02X:00:00:00:00:00", i)
		expected = append(expected, id)
		fmt.Fprintf(&sb, "Device %s Device Number %d\n", id, i)
	}

	ids := ParseDeviceIDs(sb.String())

	require.Len(t, ids, 25, "parser MUST produce one id per well-formed line")
	assert.Equal(t, expected, ids, "ids MUST preserve listing order")
}

func TestParseDeviceInfo(t *testing.T) {
	// GOAL: Verify the documented detail scenario parses field for field.
	//
	// TEST SCENARIO: full detail payload for AA:BB → record carries name,
	// connected flag, and icon exactly as listed.
	dev := ParseDeviceInfo("AA:BB", "Name: Foo\nConnected: yes\nIcon: audio-headset\n")

	assert.Equal(t, "AA:BB", dev.ID)
	assert.Equal(t, "Foo", dev.Name)
	assert.True(t, dev.Connected)
	assert.Equal(t, "audio-headset", dev.Icon)
}

func TestParseDeviceInfo_Defaults(t *testing.T) {
	t.Run("missing name yields placeholder containing the id", func(t *testing.T) {
		dev := ParseDeviceInfo("AA:BB", "Connected: no\n")
		assert.Contains(t, dev.Name, "AA:BB", "placeholder name MUST contain the id")
	})

	t.Run("missing connected field defaults to false", func(t *testing.T) {
		dev := ParseDeviceInfo("AA:BB", "Name: Foo\n")
		assert.False(t, dev.Connected)
	})

	t.Run("missing icon field stays absent", func(t *testing.T) {
		dev := ParseDeviceInfo("AA:BB", "Name: Foo\nConnected: yes\n")
		assert.Empty(t, dev.Icon)
	})

	t.Run("empty payload yields a record built from defaults", func(t *testing.T) {
		dev := ParseDeviceInfo("AA:BB", "")
		assert.Equal(t, "AA:BB", dev.ID)
		assert.Contains(t, dev.Name, "AA:BB")
		assert.False(t, dev.Connected)
		assert.Empty(t, dev.Icon)
	})
}

func TestParseDeviceInfo_ConnectedValueCases(t *testing.T) {
	for _, value := range []string{"yes", "Yes", "YES", "yEs"} {
		t.Run(value, func(t *testing.T) {
			dev := ParseDeviceInfo("AA:BB", "Connected: "+value+"\n")
			assert.True(t, dev.Connected, "Connected: %s MUST parse as connected", value)
		})
	}

	for _, value := range []string{"no", "No", "", "true"} {
		t.Run("negative "+value, func(t *testing.T) {
			dev := ParseDeviceInfo("AA:BB", "Connected: "+value+"\n")
			assert.False(t, dev.Connected, "Connected: %q MUST NOT parse as connected", value)
		})
	}
}

func TestParseDeviceInfo_MalformedLines(t *testing.T) {
	// GOAL: Verify a detail line without a separator is skipped without
	// aborting the record.
	dev := ParseDeviceInfo("AA:BB",
		"garbage line without separator\n"+
			"Name: Foo\n"+
			"another stray line\n"+
			"Connected: yes\n")

	assert.Equal(t, "Foo", dev.Name)
	assert.True(t, dev.Connected)
}

func TestParseDeviceInfo_UnknownKeysIgnored(t *testing.T) {
	dev := ParseDeviceInfo("AA:BB",
		"Device AA:BB (public)\n"+
			"Alias: Foo Alias\n"+
			"Paired: yes\n"+
			"Trusted: no\n"+
			"Name: Foo\n")

	assert.Equal(t, "Foo", dev.Name)
	assert.False(t, dev.Connected, "Paired MUST NOT be confused with Connected")
}
