package mqtt

import (
	"reflect"
	"testing"
)

func TestWildcard(t *testing.T) {
	if got := Wildcard("arwn"); got != "arwn/#" {
		t.Errorf("Wildcard() = %q, want arwn/#", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		segments []string
		want     string
	}{
		{name: "no segments", root: "arwn", segments: nil, want: "arwn"},
		{name: "single segment", root: "arwn", segments: []string{"wind"}, want: "arwn/wind"},
		{name: "multiple segments", root: "arwn", segments: []string{"temperature", "backyard"}, want: "arwn/temperature/backyard"},
		{name: "segment with slash", root: "arwn", segments: []string{"rain/today"}, want: "arwn/rain/today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.root, tt.segments...); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	got := Split("arwn/temperature/backyard")
	want := []string{"arwn", "temperature", "backyard"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}
}
