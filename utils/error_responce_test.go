package utils

import (
	"errors"
	"testing"
)

func TestIsDuplicateMessage(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{`duplicate key value violates unique constraint "idx_tech_date_slot"`, true},
		{"Lịch làm việc bị trùng", true},
		{"Kỹ thuật viên đã tồn tại trong ca này", true},
		{"record not found", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsDuplicateMessage(c.msg); got != c.want {
			t.Errorf("IsDuplicateMessage(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestIsDuplicateError(t *testing.T) {
	if IsDuplicateError(nil) {
		t.Fatal("nil error is not a duplicate")
	}
	if !IsDuplicateError(errors.New("ERROR: duplicate key value")) {
		t.Fatal("expected duplicate classification")
	}
}
