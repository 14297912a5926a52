package iiif

import (
	"testing"
)

func TestFormatNumber(t *testing.T) {
	var tests = []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{90, "90"},
		{90.0, "90"},
		{90.1, "90.1"},
		{0.1 + 0.2, "0.30000000000000004"},
		{360, "360"},
		{1084, "1084"},
	}

	for _, test := range tests {
		if s := formatNumber(test.value); s != test.expected {
			t.Errorf("formatNumber(%v): got %#v want %#v", test.value, s, test.expected)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError{KindRotation, "a39"}

	expected := "IIIF 2.1 `rotation` argument is not recognized: \"a39\""
	if err.Error() != expected {
		t.Errorf("bad message: got %#v want %#v", err.Error(), expected)
	}
}

func TestQualityAndFormat(t *testing.T) {
	var tests = []struct {
		parameter Parameter
		valid     bool
	}{
		{Quality("default"), true},
		{Quality("color"), true},
		{Quality("gray"), true},
		{Quality("bitonal"), true},
		{Quality("grey"), false},
		{Quality(""), false},
		{Format("jpg"), true},
		{Format("webp"), true},
		{Format("jp2"), true},
		{Format("jpeg"), false},
		{Format("svg"), false},
	}

	for _, test := range tests {
		if valid := test.parameter.IsValid(); valid != test.valid {
			t.Errorf("validity of %#v: got %v want %v", test.parameter, valid, test.valid)
		}
		if err := test.parameter.Validate(); (err == nil) != test.valid {
			t.Errorf("Validate of %#v: got %v", test.parameter, err)
		}
	}

	if mt := Format("tif").MediaType(); mt != "image/tiff" {
		t.Errorf("tif media type: got %#v", mt)
	}
}
