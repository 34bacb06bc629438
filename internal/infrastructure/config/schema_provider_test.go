package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_CoversSettableKeys(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	got := make(map[string]string, len(keys))
	for _, k := range keys {
		got[k.Key] = k.Default
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}

	// Every key set as a viper default has a schema entry.
	m, err := NewManagerWithDir(t.TempDir())
	require.NoError(t, err)
	m.setDefaults()
	for _, key := range m.viper.AllKeys() {
		assert.Contains(t, got, key)
	}

	assert.Equal(t, "file", got["storage.backend"])
	assert.Equal(t, defaultAccentColor, got["appearance.palette.accent"])
}
