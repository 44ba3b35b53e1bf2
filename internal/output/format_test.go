package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatTable, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{Format("dir"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteStructured(t *testing.T) {
	v := struct {
		Name string `json:"name"`
	}{Name: "standard"}

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteStructured(&jsonBuf, v, FormatJSON))
	assert.Contains(t, jsonBuf.String(), `"name": "standard"`)

	var yamlBuf bytes.Buffer
	require.NoError(t, WriteStructured(&yamlBuf, v, FormatYAML))
	assert.Equal(t, "name: standard\n", yamlBuf.String())

	assert.Error(t, WriteStructured(&bytes.Buffer{}, v, FormatTable))
}
