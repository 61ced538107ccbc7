package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"valid stl file", "benchy.stl", false},
		{"valid with spaces", "customer part v2.stl", false},
		{"empty", "", true},
		{"forward slash", "models/benchy.stl", true},
		{"backslash", `models\benchy.stl`, true},
		{"control character", "benchy\x00.stl", true},
		{"too long", string(make([]byte, 256)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	type request struct {
		FileName string `validate:"required,filename"`
		FileData string `validate:"required"`
	}

	err := Validate(request{})
	assert.Error(t, err)

	formatted := FormatError(err)
	assert.Len(t, formatted, 2)
	assert.Equal(t, "filename", formatted[0].Field)
	assert.Contains(t, formatted[0].Error, "required")

	assert.Empty(t, FormatError(nil))
}
