//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig
	// Hz is the step rate; it defaults to Host.TPS.
	Hz int
	// Frames stops the run after N steps (0 = run until cancelled).
	Frames uint64
}

// RunHeadless runs the frame step on a ticker without opening a window.
//
// It returns nil after cfg.Frames steps or when a step returns
// ErrTerminated, and ctx.Err() when ctx is cancelled first.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	cfg.Host = cfg.Host.withDefaults()
	if cfg.Hz <= 0 {
		cfg.Hz = cfg.Host.TPS
	}

	h := newHostHAL(cfg.Host)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	start := time.Now()
	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrTerminated) {
						return nil
					}
					return fmt.Errorf("headless frame %d: %w", frames, err)
				}
			}
			frames++
			if glog.V(1) && frames%uint64(cfg.Hz) == 0 {
				glog.Infof("headless: %d frames in %v", frames, time.Since(start).Round(time.Millisecond))
			}
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return nil
			}
		}
	}
}
