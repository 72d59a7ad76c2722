package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogFileName is the active log file inside the log directory.
const LogFileName = "dumb-messenger.log"

const backupStamp = "20060102-150405.000"

// RotationConfig bounds the size and retention of log files.
type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotationConfig keeps five compressed 10 MB backups for a week.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{MaxSizeMB: 10, MaxBackups: 5, MaxAgeDays: 7, Compress: true}
}

// LogRotator is an io.WriteCloser over LogFileName that moves the file
// aside once the next write would push it past the size limit.
type LogRotator struct {
	dir   string
	limit int64
	cfg   RotationConfig

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewLogRotator opens (or creates) the log file in dir.
func NewLogRotator(dir string, cfg RotationConfig) (*LogRotator, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = DefaultRotationConfig().MaxSizeMB
	}
	r := &LogRotator{
		dir:   dir,
		limit: int64(cfg.MaxSizeMB) << 20,
		cfg:   cfg,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.dir, LogFileName)
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = f, info.Size()
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.limit {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with mu held.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		warn("close log file", err)
	}
	r.file = nil

	backup := r.path() + "." + time.Now().Format(backupStamp)
	if err := os.Rename(r.path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			warn("compress "+backup, err)
		}
	}

	r.prune(time.Now())
	return r.open()
}

// prune drops backups older than MaxAgeDays, then the oldest ones beyond
// MaxBackups.
func (r *LogRotator) prune(now time.Time) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var kept []backup
	maxAge := time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour

	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), LogFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			r.remove(e.Name())
			continue
		}
		kept = append(kept, backup{name: e.Name(), mod: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(kept) <= r.cfg.MaxBackups {
		return
	}
	slices.SortFunc(kept, func(a, b backup) int { return a.mod.Compare(b.mod) })
	for _, b := range kept[:len(kept)-r.cfg.MaxBackups] {
		r.remove(b.name)
	}
}

func (r *LogRotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
		warn("remove old log "+name, err)
	}
}

// Close closes the current file. Later writes reopen it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(out)

	_, err = io.Copy(zw, in)
	err = errors.Join(err, zw.Close(), out.Close())
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

// warn reports rotation problems on stderr since the logger itself is the
// thing being rotated.
func warn(what string, err error) {
	fmt.Fprintf(os.Stderr, "dumb-messenger: %s: %v\n", what, err)
}
