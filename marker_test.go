package easyterm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsMarker(t *testing.T) {
	markers := []string{"-k", "-test", "--char", "-X", "-o.txt"}
	for _, token := range markers {
		if !isMarker(token) {
			t.Errorf("%q not recognized as a marker", token)
		}
	}
	values := []string{"", "-", "--", "-1", "-5.5", "file", "-a b", "- k", "-\tx"}
	for _, token := range values {
		if isMarker(token) {
			t.Errorf("%q wrongly recognized as a marker", token)
		}
	}
}

func TestOptionKey(t *testing.T) {
	cases := map[string]string{"-k": "k", "--char": "char", "-long-name": "long-name"}
	for token, want := range cases {
		if key := optionKey(token); key != want {
			t.Errorf("optionKey(%q) is %q, expected %q", token, key, want)
		}
	}
}

func TestLocateMarkers(t *testing.T) {
	got := locateMarkers([]string{"in", "-k", "10", "-files", "a", "-2"})
	if diff := cmp.Diff([]int{1, 3}, got); diff != "" {
		t.Errorf("marker indices (-want +got):\n%s", diff)
	}
	if got := locateMarkers(nil); got != nil {
		t.Errorf("expected no indices, got %v", got)
	}
}

func TestMatchAny(t *testing.T) {
	ok, err := matchAny("extraNum", []string{`^other$`, `^extra`})
	if err != nil || !ok {
		t.Errorf("expected a match, got %v, %v", ok, err)
	}
	ok, err = matchAny("Extra", []string{`^extra`})
	if err != nil || ok {
		t.Errorf("matching must be case sensitive, got %v, %v", ok, err)
	}
	if _, err = matchAny("x", []string{`(`}); err == nil {
		t.Error("expected a compile error")
	}
}
