package model

import (
	"encoding/json"
	"testing"
)

func TestContactMessage_Tuple(t *testing.T) {
	text := "hi"
	m := &ContactMessage{ID: 3, Name: "Ann", Email: "a@x.com", Message: &text}

	b, err := json.Marshal(m.Tuple())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `[3,"Ann","a@x.com","hi"]`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestContactMessage_Tuple_NilMessage(t *testing.T) {
	m := &ContactMessage{ID: 1, Name: "Bob", Email: "b@x.com"}

	b, err := json.Marshal(m.Tuple())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `[1,"Bob","b@x.com",null]`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
