package cdxvalue

import "testing"

func TestFixedPoint16RoundTrip(t *testing.T) {
	v, err := KindFixedPoint16.ParseText("18")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	fp := v.(FixedPoint16)
	if fp.TenthsOfPercent != 180 {
		t.Errorf("TenthsOfPercent = %d, want 180", fp.TenthsOfPercent)
	}
	b, err := fp.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := KindFixedPoint16.DecodeBinary(b)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if got := decoded.FormatText(); got != "18" {
		t.Errorf("FormatText() = %q, want %q", got, "18")
	}
}

func TestFixedPoint16Fractional(t *testing.T) {
	v, err := KindFixedPoint16.ParseText("12.5")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if v.(FixedPoint16).TenthsOfPercent != 125 {
		t.Errorf("TenthsOfPercent = %d, want 125", v.(FixedPoint16).TenthsOfPercent)
	}
}
