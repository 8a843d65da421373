package survey

import (
	"strconv"
	"strings"
)

// Field validators are pure predicates over raw text input. Each returns
// whether the value is acceptable plus a display reason when it is not.
// They never panic and have no side effects; the wizard runs them on every
// field change.

const (
	minAge = 10
	maxAge = 130

	minHeightCM = 30.0
	maxHeightCM = 250.0

	minWeightKG = 20.0
	maxWeightKG = 400.0

	minTargetWeightKG = 30.0
	maxTargetWeightKG = 400.0
)

func ValidateName(raw string) (bool, string) {
	if strings.TrimSpace(raw) == "" {
		return false, "name is required"
	}
	return true, ""
}

func ValidateAge(raw string) (bool, string) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, "age must be a whole number"
	}
	if age < minAge || age > maxAge {
		return false, "age must be between 10 and 130"
	}
	return true, ""
}

func ValidateHeight(raw string) (bool, string) {
	height, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, "height must be a number"
	}
	if height <= minHeightCM || height >= maxHeightCM {
		return false, "height must be between 30 and 250 cm"
	}
	return true, ""
}

func ValidateWeight(raw string) (bool, string) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, "weight must be a number"
	}
	if weight <= minWeightKG || weight > maxWeightKG {
		return false, "weight must be between 20 and 400 kg"
	}
	return true, ""
}

func ValidateTargetWeight(raw string) (bool, string) {
	target, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, "target weight must be a number"
	}
	if target <= minTargetWeightKG || target >= maxTargetWeightKG {
		return false, "target weight must be between 30 and 400 kg"
	}
	return true, ""
}
