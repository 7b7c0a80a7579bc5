package seq

import "testing"

func TestIsEmpty(t *testing.T) {
	if !IsEmpty([]int(nil)) {
		t.Error("nil slice should be empty")
	}
	if !IsEmpty([]string{}) {
		t.Error("zero-length slice should be empty")
	}
	if IsEmpty([]string{""}) {
		t.Error("slice with one element should not be empty")
	}

	type ids []int
	if IsEmpty(ids{1}) {
		t.Error("named slice type with one element should not be empty")
	}

	if !IsMapEmpty(map[string]int(nil)) {
		t.Error("nil map should be empty")
	}
	if IsMapEmpty(map[string]int{"a": 1}) {
		t.Error("map with one entry should not be empty")
	}
}
