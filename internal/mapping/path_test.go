package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"Armature", false},
		{"Armature/Hips/Spine", false},
		{"Armature/Hips (1)/Spine", false},
		{"", true},
		{"/Armature", true},
		{"Armature/", true},
		{"Armature//Hips", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
