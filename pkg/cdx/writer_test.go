package cdx

import (
	"bytes"
	"testing"

	"github.com/dimelords/cdxlib/pkg/tree"
)

func TestWriteProducesExpectedHeader(t *testing.T) {
	root := tree.New("CDXML")
	root.HasID = true
	root.ID = 1

	out, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.Equal(out[:headerLen], header) {
		t.Errorf("header mismatch: got % x", out[:headerLen])
	}
	if got := out[headerLen : headerLen+2]; got[0] != 0x00 || got[1] != 0x80 {
		t.Errorf("doc tag = % x, want 00 80 (0x8000 little-endian)", got)
	}
}

func TestWriteAssignsMissingID(t *testing.T) {
	root := tree.New("CDXML") // HasID false
	idgen := tree.NewIDGenerator()
	out, err := Write(root, idgen)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.ID != 5000 {
		t.Errorf("root id = %d, want 5000 (first generated id)", doc.ID)
	}
}

func TestWriteFoldsFonttableAndColortableAsRootAttributes(t *testing.T) {
	root := buildSampleDocument()
	out, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ft := doc.Find("fonttable")
	if ft == nil {
		t.Fatal("expected fonttable child after round trip")
	}
	fonts := ft.FindAll("font")
	if len(fonts) != 1 {
		t.Fatalf("got %d fonts, want 1", len(fonts))
	}
	if name, _ := fonts[0].Attr("name"); name != "Arial" {
		t.Errorf("font name = %q, want Arial", name)
	}
}

func TestWriteFoldsLabelStyleQuartet(t *testing.T) {
	root := buildSampleDocument()
	out, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	labels := doc.Descendants("t")
	if len(labels) != 1 {
		t.Fatalf("got %d <t> elements, want 1", len(labels))
	}
	if size, ok := labels[0].Attr("LabelSize"); !ok || size != "10" {
		t.Errorf("LabelSize = %q, %v, want \"10\", true", size, ok)
	}
}

func TestWriteFoldsRunsIntoText(t *testing.T) {
	root := buildSampleDocument()
	out, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	labels := doc.Descendants("t")
	runs := labels[0].FindAll("s")
	if len(runs) != 1 || runs[0].Text != "O" {
		t.Fatalf("runs after round trip = %+v, want one run with text \"O\"", runs)
	}
}

func TestWriteUsesExtendedLengthForLongProperty(t *testing.T) {
	root := tree.New("CDXML")
	root.HasID = true
	root.ID = 1

	// A single styled run long enough that its folded Text property
	// (run table + text bytes) exceeds 65534 bytes, forcing the
	// 0xFFFF + 4-byte extended length form.
	label := tree.New("t")
	label.HasID = true
	label.ID = 2
	run := tree.New("s")
	run.Text = string(make([]byte, 70000))
	run.SetAttr("font", "1")
	run.SetAttr("size", "10")
	run.SetAttr("face", "0")
	run.SetAttr("color", "0")
	label.AppendChild(run)
	root.AppendChild(label)

	out, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(out)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	runs := doc.Descendants("s")
	if len(runs) != 1 || len(runs[0].Text) != 70000 {
		t.Fatalf("round-tripped run text len = %d (count %d), want 70000 (count 1)", len(runs[0].Text), len(runs))
	}
}

func TestWriteTextWithoutRunsFails(t *testing.T) {
	root := tree.New("CDXML")
	root.HasID = true
	t1 := tree.New("t")
	t1.HasID = true
	root.AppendChild(t1)

	if _, err := Write(root, tree.NewIDGenerator()); err == nil {
		t.Error("expected error writing a <t> element with zero <s> children")
	}
}
