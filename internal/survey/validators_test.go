package survey

import "testing"

func TestValidateNameRequiresNonBlank(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"Alex", true},
		{"  Alex  ", true},
		{"", false},
		{"   ", false},
	}

	for _, tc := range cases {
		if ok, _ := ValidateName(tc.raw); ok != tc.valid {
			t.Fatalf("ValidateName(%q) = %v, want %v", tc.raw, ok, tc.valid)
		}
	}
}

func TestValidateAgeBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"9", false},
		{"10", true},
		{"130", true},
		{"131", false},
		{"thirty", false},
		{"", false},
		{"29.5", false},
	}

	for _, tc := range cases {
		if ok, _ := ValidateAge(tc.raw); ok != tc.valid {
			t.Fatalf("ValidateAge(%q) = %v, want %v", tc.raw, ok, tc.valid)
		}
	}
}

func TestValidateHeightBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"30", false},
		{"30.5", true},
		{"175", true},
		{"249.9", true},
		{"250", false},
		{"tall", false},
	}

	for _, tc := range cases {
		if ok, _ := ValidateHeight(tc.raw); ok != tc.valid {
			t.Fatalf("ValidateHeight(%q) = %v, want %v", tc.raw, ok, tc.valid)
		}
	}
}

func TestValidateWeightBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"20", false},
		{"20.01", true},
		{"400", true},
		{"400.01", false},
		{"heavy", false},
	}

	for _, tc := range cases {
		if ok, _ := ValidateWeight(tc.raw); ok != tc.valid {
			t.Fatalf("ValidateWeight(%q) = %v, want %v", tc.raw, ok, tc.valid)
		}
	}
}

func TestValidateTargetWeightBoundaries(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"30", false},
		{"30.5", true},
		{"399.9", true},
		{"400", false},
	}

	for _, tc := range cases {
		if ok, _ := ValidateTargetWeight(tc.raw); ok != tc.valid {
			t.Fatalf("ValidateTargetWeight(%q) = %v, want %v", tc.raw, ok, tc.valid)
		}
	}
}

func TestValidatorsReportReasons(t *testing.T) {
	if _, reason := ValidateName("  "); reason == "" {
		t.Fatal("expected a reason for blank name")
	}
	if _, reason := ValidateAge("5"); reason == "" {
		t.Fatal("expected a reason for out-of-range age")
	}
	if ok, reason := ValidateWeight("80"); !ok || reason != "" {
		t.Fatalf("expected valid weight with empty reason, got %v %q", ok, reason)
	}
}
