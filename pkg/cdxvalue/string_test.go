package cdxvalue

import "testing"

func TestStyledStringRoundTrip(t *testing.T) {
	ss := StyledString{
		Text:    "Ethanol",
		Charset: "iso-8859-1",
		Runs: []Run{
			{StartIndex: 0, Style: FontStyle{FontID: 1, Face: 0, Size: DefaultFontSize, Color: 0}},
			{StartIndex: 3, Style: FontStyle{FontID: 1, Face: 1, Size: 240, Color: 2}},
		},
	}
	b, err := ss.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := DecodeStyledString(b, "iso-8859-1")
	if err != nil {
		t.Fatalf("DecodeStyledString: %v", err)
	}
	if decoded.Text != ss.Text {
		t.Errorf("Text = %q, want %q", decoded.Text, ss.Text)
	}
	if len(decoded.Runs) != len(ss.Runs) {
		t.Fatalf("got %d runs, want %d", len(decoded.Runs), len(ss.Runs))
	}
	for i, r := range decoded.Runs {
		if r != ss.Runs[i] {
			t.Errorf("run %d = %+v, want %+v", i, r, ss.Runs[i])
		}
	}
}

func TestStyledStringUTF8Fallback(t *testing.T) {
	// alpha (U+03B1) cannot be represented in iso-8859-1; encode must
	// fall back to UTF-8 instead of erroring.
	ss := StyledString{Text: "α-D-glucose", Charset: "iso-8859-1"}
	b, err := ss.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := decodeText(b[2:], "utf-8")
	if err != nil {
		t.Fatalf("decodeText: %v", err)
	}
	if decoded != ss.Text {
		t.Errorf("fallback round trip = %q, want %q", decoded, ss.Text)
	}
}

func TestStyledStringEmptyRuns(t *testing.T) {
	ss := StyledString{Text: "plain", Charset: "iso-8859-1"}
	b, err := ss.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary: %v", err)
	}
	decoded, err := DecodeStyledString(b, "iso-8859-1")
	if err != nil {
		t.Fatalf("DecodeStyledString: %v", err)
	}
	if len(decoded.Runs) != 0 {
		t.Errorf("got %d runs, want 0", len(decoded.Runs))
	}
	if decoded.Text != "plain" {
		t.Errorf("Text = %q, want %q", decoded.Text, "plain")
	}
}

func TestFontStyleFromRunAttrsDefaults(t *testing.T) {
	fs, err := FontStyleFromRunAttrs("1", nil, nil, nil)
	if err != nil {
		t.Fatalf("FontStyleFromRunAttrs: %v", err)
	}
	if fs.Size != DefaultFontSize {
		t.Errorf("Size = %d, want default %d", fs.Size, DefaultFontSize)
	}
	if fs.Face != 0 || fs.Color != 0 {
		t.Errorf("face/color = %d/%d, want 0/0", fs.Face, fs.Color)
	}
}

func TestStyledStringTruncatedPayload(t *testing.T) {
	// run_count says 1 but the buffer has no run bytes.
	if _, err := DecodeStyledString([]byte{1, 0}, "iso-8859-1"); err == nil {
		t.Error("expected error for truncated run table")
	}
}
