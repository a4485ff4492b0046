package flash

import (
	"strings"
	"testing"

	"github.com/khauvukhanh/web-clot/pkg/view"
)

func TestEncodeDecode(t *testing.T) {
	c := NewCodec([]byte("secret"), "wc_flash", false)

	val, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Category created successfully!"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	f, err := c.Decode(val)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Kind != view.FlashSuccess || f.Message != "Category created successfully!" {
		t.Fatalf("roundtrip = %+v", f)
	}
}

func TestTamperedValueRejected(t *testing.T) {
	c := NewCodec([]byte("secret"), "wc_flash", false)
	val, _ := c.Encode(view.Flash{Kind: view.FlashError, Message: "x"})

	payload, _, _ := strings.Cut(val, ".")
	other := NewCodec([]byte("other-secret"), "wc_flash", false)
	forged := payload + "." + other.sign(payload)

	if _, err := c.Decode(forged); err == nil {
		t.Fatal("forged signature accepted")
	}
	if _, err := c.Decode("garbage"); err == nil {
		t.Fatal("malformed value accepted")
	}
}

func TestEmptyMessageRejected(t *testing.T) {
	c := NewCodec([]byte("secret"), "wc_flash", false)
	val, _ := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "   "})
	if _, err := c.Decode(val); err == nil {
		t.Fatal("blank message accepted")
	}
}
