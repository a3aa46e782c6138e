package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "Oatmeal", "Oatmeal", false},
		{"surrounding spaces", "  Oatmeal  ", "Oatmeal", false},
		{"inner spaces kept", " Mashed potatoes ", "Mashed potatoes", false},
		{"empty string", "", "", true},
		{"only spaces", "   ", "", true},
		{"only tabs and newlines", "\t\n\t", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBlank)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNonBlankField(t *testing.T) {
	require.NoError(t, NonBlankField("theme", "gruvbox"))

	err := NonBlankField("theme", "  ")
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "theme", fieldErrs[0].Field)
}

func TestOneOf(t *testing.T) {
	v := OneOf("markdown", "yaml")
	assert.NoError(t, v("yaml"))
	err := v("toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markdown, yaml")
}
