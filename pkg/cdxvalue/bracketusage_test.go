package cdxvalue

import "testing"

func TestBracketUsageStandardRoundTrip(t *testing.T) {
	v, err := KindBracketUsage.ParseText("SRU")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	b, err := v.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	if len(b) != 1 {
		t.Fatalf("standard encoding length = %d, want 1", len(b))
	}
	decoded, err := KindBracketUsage.DecodeBinary(b)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if decoded.FormatText() != "SRU" {
		t.Errorf("round trip = %q, want %q", decoded.FormatText(), "SRU")
	}
}

func TestBracketUsageLegacyTwoByteFormPreservesExtraByte(t *testing.T) {
	// Observed in real files: 2 bytes where only 1 is documented. The
	// second byte's meaning is unknown and must be preserved verbatim.
	legacy := []byte{byte(2), 0x7F} // 2 = SRU, extra byte 0x7F
	decoded, err := KindBracketUsage.DecodeBinary(legacy)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	bu := decoded.(BracketUsage)
	if bu.FormatText() != "SRU 127" {
		t.Errorf("textual form = %q, want %q (extra byte carried as a second field)", bu.FormatText(), "SRU 127")
	}
	reencoded, err := bu.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	if len(reencoded) != 2 || reencoded[1] != 0x7F {
		t.Errorf("re-encoded = %v, want 2 bytes with extra byte 0x7F preserved", reencoded)
	}
}

func TestBracketUsageLegacyTextFormRoundTrips(t *testing.T) {
	// The text form is what the element tree stores between decode and
	// encode, so the legacy extra byte has to survive it too.
	legacy := []byte{byte(2), 0x7F}
	decoded, err := KindBracketUsage.DecodeBinary(legacy)
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	reparsed, err := KindBracketUsage.ParseText(decoded.FormatText())
	if err != nil {
		t.Fatalf("ParseText(%q): %v", decoded.FormatText(), err)
	}
	reencoded, err := reparsed.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	if len(reencoded) != 2 || reencoded[0] != 2 || reencoded[1] != 0x7F {
		t.Errorf("encode(parse(format(decode(x)))) = %v, want original bytes 02 7F", reencoded)
	}
}
