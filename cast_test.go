package easyterm

import (
	"strings"
	"testing"
)

func TestCast(t *testing.T) {
	if v, err := cast(kindInt, "n", "-42"); err != nil || v != -42 {
		t.Errorf("got %v, %v", v, err)
	}
	if v, err := cast(kindFloat, "k", "5.5"); err != nil || v != 5.5 {
		t.Errorf("got %v, %v", v, err)
	}
	if v, err := cast(kindString, "s", "multi word str"); err != nil || v != "multi word str" {
		t.Errorf("got %v, %v", v, err)
	}
}

func TestCastErrorNamesOption(t *testing.T) {
	_, err := cast(kindInt, "n", "4.5")
	if err == nil || !strings.Contains(err.Error(), "-n") {
		t.Errorf("error does not name the option: %v", err)
	}
	_, err = cast(kindFloat, "k", "abc")
	if err == nil || !strings.Contains(err.Error(), "-k") {
		t.Errorf("error does not name the option: %v", err)
	}
}
