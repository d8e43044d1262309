package test

import "testing"

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. The
// test will end immediately if the test fails
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
	}
}

// ExpectInequality is the inverse of ExpectEquality
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Supported types are bool and error
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}
	case error:
		if v != nil {
			t.Errorf("expected success (error: %v)", v)
			return false
		}
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess", v)
		return false
	}

	return true
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Supported types are bool and error
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}
	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}
	case nil:
		t.Errorf("expected failure (nil)")
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure", v)
		return false
	}

	return true
}

// DemandSuccess tests argument v for a success condition suitable for its
// type. The test will end immediately if the test fails
func DemandSuccess(t *testing.T, v any) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Fatalf("demanded success (bool)")
		}
	case error:
		if v != nil {
			t.Fatalf("demanded success (error: %v)", v)
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for DemandSuccess", v)
	}
}
