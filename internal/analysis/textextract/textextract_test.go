package textextract

import (
	"strings"
	"testing"
)

func TestExtract_PlainText(t *testing.T) {
	for _, ext := range []string{"txt", ".TXT", "csv", "md", "json"} {
		res := Extract([]byte("hello case file"), ext)
		if res.Text != "hello case file" {
			t.Errorf("ext %q: Text = %q", ext, res.Text)
		}
		if res.Method != MethodTextLayer {
			t.Errorf("ext %q: Method = %q, want %q", ext, res.Method, MethodTextLayer)
		}
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	res := Extract([]byte{0x00, 0x01, 0x02}, "exe")
	if res.Text != "" || res.Method != "" {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestExtract_MalformedPDFNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("not a pdf at all"),
		[]byte("%PDF-1.4 truncated garbage"),
		{0xFF, 0xFE, 0x00, 0x01},
	}
	for _, content := range inputs {
		res := Extract(content, "pdf")
		// short garbage stays below the fallback threshold
		if res.Text != "" {
			t.Errorf("expected empty text for %d garbage bytes, got %q", len(content), res.Text)
		}
	}
}

func TestExtract_PDFFallbackThreshold(t *testing.T) {
	// long printable content inside an unparseable "pdf" comes back via the
	// printable-byte fallback
	long := []byte(strings.Repeat("readable insurance correspondence text ", 5))
	res := Extract(long, "pdf")
	if res.Method != MethodFallback {
		t.Fatalf("Method = %q, want %q", res.Method, MethodFallback)
	}
	if !strings.Contains(res.Text, "readable") {
		t.Errorf("fallback text lost content: %q", res.Text)
	}

	short := Extract([]byte("too short"), "pdf")
	if short.Text != "" {
		t.Errorf("below-threshold fallback must be empty, got %q", short.Text)
	}
}

func TestFallbackText_StripsNonPrintable(t *testing.T) {
	content := []byte("Insurance claim details for the Henderson property\x00\x01\x02 continue on the following page of this letter")
	res := fallbackText(content)
	if strings.ContainsAny(res.Text, "\x00\x01\x02") {
		t.Errorf("non-printable bytes survived: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Insurance") || !strings.Contains(res.Text, "Henderson") {
		t.Errorf("printable content lost: %q", res.Text)
	}
}

func TestExtract_ArbitraryBytesAnyExtension(t *testing.T) {
	junk := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x42}
	for _, ext := range []string{"pdf", "docx", "rtf", "odt", "png", ""} {
		// must not panic, whatever comes back
		_ = Extract(junk, ext)
	}
}
