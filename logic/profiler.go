package logic

import (
	"context"
	"fmt"
	"masto_bridge/shared"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"time"
)

const profilerStartDelaySec = 10
const profilerLoopSec = 60

// IProfiler periodically dumps goroutine stacks, to catch leaks in the poll loop and event handlers.
type IProfiler interface {
	Run(ctx context.Context)
}

type profiler struct {
	cfg    *shared.Config
	logger shared.ILogger
	sleep  func(ctx context.Context, d time.Duration)
}

func NewProfiler(cfg *shared.Config, logger shared.ILogger) IProfiler {
	return &profiler{cfg, logger, sleepCtx}
}

func saveProfile(profileDir string, now time.Time) (string, error) {
	fname := fmt.Sprintf("%v.txt", now.Format("2006-01-02!15-04-05"))
	profPath := filepath.Join(profileDir, fname)
	f, err := os.Create(profPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = fmt.Fprintf(f, "Goroutine count: %d\n\n", runtime.NumGoroutine()); err != nil {
		return "", err
	}
	if err = pprof.Lookup("goroutine").WriteTo(f, 2); err != nil {
		return "", err
	}
	return profPath, nil
}

func purgeOldProfiles(profileDir string, cutoff time.Time) error {
	return filepath.Walk(profileDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && info.ModTime().Before(cutoff) {
			return os.Remove(path)
		}
		return nil
	})
}

func (prof *profiler) saveProfileAndPurgeOld() error {
	now := time.Now()
	if _, err := saveProfile(prof.cfg.ProfileDir, now); err != nil {
		return err
	}
	return purgeOldProfiles(prof.cfg.ProfileDir, now.AddDate(0, 0, -prof.cfg.ProfileKeepDays))
}

// Run returns right away if no profile directory is configured.
func (prof *profiler) Run(ctx context.Context) {
	if prof.cfg.ProfileDir == "" {
		return
	}
	if err := os.MkdirAll(prof.cfg.ProfileDir, 0755); err != nil {
		prof.logger.Errorf("Cannot create profile directory %s: %v", prof.cfg.ProfileDir, err)
		return
	}
	prof.logger.Infof("Saving goroutine profiles to %s", prof.cfg.ProfileDir)
	prof.sleep(ctx, profilerStartDelaySec*time.Second)
	for ctx.Err() == nil {
		if err := prof.saveProfileAndPurgeOld(); err != nil {
			prof.logger.Warnf("Failed to save goroutine profile: %v", err)
		}
		prof.sleep(ctx, profilerLoopSec*time.Second)
	}
}
