package types

import (
	"encoding/json"
	"testing"
)

func TestFlexIntFromNumber(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`-1446`), &f); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if f.Int() != -1446 {
		t.Errorf("got %d, want -1446", f.Int())
	}
}

func TestFlexIntFromString(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"-1446"`), &f); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if f.Int() != -1446 {
		t.Errorf("got %d, want -1446", f.Int())
	}
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	var f FlexInt
	if err := json.Unmarshal([]byte(`"not a year"`), &f); err == nil {
		t.Error("expected error for non-numeric string")
	}
	if err := json.Unmarshal([]byte(`true`), &f); err == nil {
		t.Error("expected error for boolean")
	}
}

func TestFlexIntNullIsNoop(t *testing.T) {
	f := FlexInt(7)
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if f.Int() != 7 {
		t.Errorf("null should leave value untouched, got %d", f.Int())
	}
}

func TestFlexIntPtr(t *testing.T) {
	var f *FlexInt
	if f.IntPtr() != nil {
		t.Error("nil receiver should yield nil")
	}
	v := FlexInt(30)
	if p := v.IntPtr(); p == nil || *p != 30 {
		t.Errorf("IntPtr = %v, want 30", p)
	}
}

func TestFlexIntMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(FlexInt(-970))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "-970" {
		t.Errorf("got %s, want -970", out)
	}
}
