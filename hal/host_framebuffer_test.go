//go:build !tinygo

package hal

import "testing"

func TestFramebufferPresentPublishes(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(255, 255, 255)

	snap := make([]byte, len(fb.Buffer()))
	fb.snapshotRGB565(snap)
	if snap[0] != 0 {
		t.Fatalf("front buffer changed before Present: %v", snap)
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.snapshotRGB565(snap)
	for i, b := range snap {
		if b != 0xFF {
			t.Fatalf("snap[%d] = %#x, want 0xff", i, b)
		}
	}
}
