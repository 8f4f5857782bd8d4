package cdxvalue

import "testing"

func TestEnumKindRoundTrip(t *testing.T) {
	k := NewEnumKind("TestEnum", 1, []EnumPair{
		{Name: "Alpha", Value: 0},
		{Name: "Beta", Value: 1},
	})
	v, err := k.ParseText("Beta")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	b, err := v.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := k.DecodeBinary(b)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if decoded.FormatText() != "Beta" {
		t.Errorf("FormatText() = %q, want %q", decoded.FormatText(), "Beta")
	}
}

func TestEnumKindUnknownValue(t *testing.T) {
	k := NewEnumKind("TestEnum", 1, []EnumPair{{Name: "Alpha", Value: 0}})
	if _, err := k.ParseText("Gamma"); err == nil {
		t.Error("expected error for unrecognized symbolic name")
	}
	if _, err := k.DecodeBinary([]byte{42}); err == nil {
		t.Error("expected error for unrecognized numeric value")
	}
}

func TestBitflagKindComposesMultipleBits(t *testing.T) {
	k := NewBitflagKind("TestFlags", 2, []EnumPair{
		{Name: "Solid", Value: 1},
		{Name: "Hatch", Value: 2},
		{Name: "Shadow", Value: 4},
	})
	v, err := k.ParseText("Solid Shadow")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	bf := v.(BitflagValue)
	if bf.Int64() != 5 {
		t.Errorf("value = %d, want 5", bf.Int64())
	}
	b, err := v.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := k.DecodeBinary(b)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if got, want := decoded.FormatText(), "Solid Shadow"; got != want {
		t.Errorf("FormatText() = %q, want %q (canonical order)", got, want)
	}
}

func TestBitflagKindZeroValue(t *testing.T) {
	k := NewBitflagKind("TestFlags", 2, []EnumPair{{Name: "Solid", Value: 1}})
	v, err := k.ParseText("0")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if got := v.FormatText(); got != "0" {
		t.Errorf("FormatText() = %q, want %q", got, "0")
	}
}
