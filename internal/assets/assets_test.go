package assets

import (
	"bytes"
	"image/png"
	"os"
	"testing"
)

func TestIconIsPNG(t *testing.T) {
	if _, err := png.Decode(bytes.NewReader(Icon)); err != nil {
		t.Fatalf("embedded icon is not a PNG: %v", err)
	}
}

func TestWriteIcon(t *testing.T) {
	path, err := WriteIcon(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, Icon) {
		t.Error("written icon differs from embedded icon")
	}
}
