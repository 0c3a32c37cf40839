//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	steps := 0
	var fb Framebuffer
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		fb = h.Display().Framebuffer()
		return func() error { steps++; return nil }
	}, HeadlessConfig{Hz: 1000, Frames: 3, Host: HostConfig{Width: 40, Height: 30}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
	if fb.Width() != 40 || fb.Height() != 30 || len(fb.Buffer()) != 40*30*2 {
		t.Fatalf("framebuffer %dx%d len %d", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
}

func TestRunHeadlessTerminated(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error {
			steps++
			if steps == 2 {
				return ErrTerminated
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 2 {
		t.Fatalf("steps = %d, want 2", steps)
	}
}

func TestRunHeadlessWrapsStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless = %v, want wrapped boom", err)
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(h HAL) func() error { return nil }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless = %v, want deadline exceeded", err)
	}
}

func TestHeadlessInputIsQuiet(t *testing.T) {
	h := New(HostConfig{})
	in := h.Input()
	if in.CloseRequested() {
		t.Fatal("close requested without a window")
	}
	if in.Keyboard().Down(KeyKP6) {
		t.Fatal("key held without a window")
	}
	if fb := h.Display().Framebuffer(); fb.Width() != 300 || fb.Height() != 300 {
		t.Fatalf("default framebuffer %dx%d", fb.Width(), fb.Height())
	}
}
