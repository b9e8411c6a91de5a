package clean

import (
	"errors"
	"math"
	"testing"
	"time"

	"golang.org/x/net/html"
)

type myError struct{ msg string }

func (e myError) Error() string { return e.msg }

func TestToChild(t *testing.T) {
	el := &html.Node{Type: html.ElementNode, Data: "p"}
	var nilNode *html.Node
	var nilTime *time.Time
	var nilErr *myError

	tests := []struct {
		name     string
		value    any
		wantKind ChildKind
		wantText string
	}{
		{"nil", nil, ChildAbsent, ""},
		{"typed nil node", nilNode, ChildAbsent, ""},
		{"nil stringer pointer", nilTime, ChildAbsent, ""},
		{"nil error pointer", nilErr, ChildAbsent, ""},
		{"element", el, ChildElement, ""},
		{"string", "Hello", ChildText, "Hello"},
		{"empty string kept", "", ChildText, ""},
		{"int", 8, ChildText, "8"},
		{"float", 8.8, ChildText, "8.8"},
		{"integral float", 1.0, ChildText, "1.0"},
		{"negative zero", math.Copysign(0, -1), ChildText, "-0.0"},
		{"large float", 1e20, ChildText, "1e+20"},
		{"small float", 0.00001, ChildText, "1e-05"},
		{"nan", math.NaN(), ChildText, "nan"},
		{"negative int64", int64(-42), ChildText, "-42"},
		{"uint8", uint8(7), ChildText, "7"},
		{"float32", float32(0.25), ChildText, "0.25"},
		{"bool", true, ChildText, "true"},
		{"bytes", []byte("raw"), ChildText, "raw"},
		{"stringer", 1500 * time.Millisecond, ChildText, "1.5s"},
		{"error", errors.New("boom"), ChildText, "boom"},
		{"struct", struct{ A int }{1}, ChildText, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ToChild(tt.value)
			if c.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", c.Kind, tt.wantKind)
			}
			if c.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", c.Text, tt.wantText)
			}
			if tt.wantKind == ChildElement && c.Node != el {
				t.Error("element child should pass the node through unchanged")
			}
		})
	}
}

func TestSafeChildren(t *testing.T) {
	a := &html.Node{Type: html.ElementNode, Data: "a"}
	b := &html.Node{Type: html.ElementNode, Data: "b"}

	got := SafeChildren([]any{
		"one",
		nil,
		a,
		[]any{2, nil, []*html.Node{b, nil}},
		(*html.Node)(nil),
		"<script>",
	})

	want := []Child{
		{Kind: ChildText, Text: "one"},
		{Kind: ChildElement, Node: a},
		{Kind: ChildText, Text: "2"},
		{Kind: ChildElement, Node: b},
		{Kind: ChildText, Text: "<script>"},
	}

	if len(got) != len(want) {
		t.Fatalf("SafeChildren() returned %d children, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestChildKindString(t *testing.T) {
	if ChildElement.String() != "Element" || ChildKind(99).String() != "Unknown" {
		t.Error("unexpected ChildKind names")
	}
}

func TestStringifyNilPointer(t *testing.T) {
	var when *time.Time
	if got := Stringify(when); got != "" {
		t.Errorf("Stringify(nil *time.Time) = %q, want empty", got)
	}
	if got := Stringify(&myError{"boom"}); got != "boom" {
		t.Errorf("Stringify(&myError) = %q, want %q", got, "boom")
	}
}
