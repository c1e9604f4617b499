package textmeasure

import "testing"

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", DirectionLTR},
		{"latin", "hello", DirectionLTR},
		{"persian", "سلام", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"hebrew", "שלום", DirectionRTL},
		{"mixed rtl first", "سلام world", DirectionRTL},
		{"mixed ltr first", "hello سلام", DirectionLTR},
		{"digits only", "123", DirectionLTR},
		{"punctuation only", "!?.", DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseDirection(tt.text); got != tt.want {
				t.Errorf("BaseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLTR.String() != "ltr" {
		t.Errorf("DirectionLTR = %q", DirectionLTR.String())
	}
	if DirectionRTL.String() != "rtl" {
		t.Errorf("DirectionRTL = %q", DirectionRTL.String())
	}
}
