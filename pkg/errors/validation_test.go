package errors

import "testing"

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		width   float64
		height  float64
		wantErr bool
	}{
		{"valid", 400, 300, false},
		{"zero is degenerate but allowed", 0, 0, false},
		{"negative width", -1, 300, true},
		{"negative height", 400, -1, true},
		{"too large", 200000, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%g, %g) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateSpacingIndex(t *testing.T) {
	if err := ValidateSpacingIndex(0); err != nil {
		t.Errorf("ValidateSpacingIndex(0) = %v, want nil", err)
	}
	if err := ValidateSpacingIndex(5); err != nil {
		t.Errorf("ValidateSpacingIndex(5) = %v, want nil", err)
	}
	if err := ValidateSpacingIndex(-1); err == nil {
		t.Error("ValidateSpacingIndex(-1) = nil, want error")
	}
	if err := ValidateSpacingIndex(10001); err == nil {
		t.Error("ValidateSpacingIndex(10001) = nil, want error")
	}
}

func TestValidateProfileID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "summer-gallery", false},
		{"valid with dots", "gallery.v2", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"path separator", "a/b", true},
		{"backslash", "a\\b", true},
		{"control character", "a\x01b", true},
		{"too long", string(make([]byte, 200)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfileID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
