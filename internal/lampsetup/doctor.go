package lampsetup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
)

const minFreeGiB = 2

type CheckResult struct {
	Name string
	OK   bool
	Err  error
}

// RunChecks runs the advisory preflight checks. None of them is fatal.
func RunChecks(ctx context.Context, cfg Config, runner Runner) []CheckResult {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"root privileges", func() error {
			if os.Geteuid() != 0 {
				return errors.New("not running as root; package and service commands will fail")
			}
			return nil
		}},
		{"apt-get binary", func() error {
			_, err := exec.LookPath("apt-get")
			return err
		}},
		{"systemctl binary", func() error {
			_, err := exec.LookPath("systemctl")
			return err
		}},
		{"hostname binary", func() error {
			_, err := exec.LookPath("hostname")
			return err
		}},
		{cfg.WebRoot + " writable", func() error {
			return writableCheck(cfg.WebRoot)
		}},
		{fmt.Sprintf("disk space >= %dGiB on /", minFreeGiB), func() error {
			return diskCheck("/", minFreeGiB)
		}},
		{"port 80 status", func() error {
			out, err := runner.Output(ctx, "ss", "-ltn")
			if err != nil {
				return err
			}
			if strings.Contains(out, ":80 ") {
				return errors.New("port 80 already in use")
			}
			return nil
		}},
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		err := check.fn()
		results = append(results, CheckResult{Name: check.name, OK: err == nil, Err: err})
	}
	return results
}

func RunDoctor(ctx context.Context, w io.Writer, cfg Config, runner Runner) {
	fmt.Fprintln(w, "lampsetup doctor")
	fmt.Fprintf(w, "runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	for _, r := range RunChecks(ctx, cfg, runner) {
		if r.OK {
			fmt.Fprintf(w, "[ OK ] %s\n", r.Name)
		} else {
			fmt.Fprintf(w, "[WARN] %s: %v\n", r.Name, r.Err)
		}
	}
}

// writableCheck reports whether dir, or its nearest existing ancestor when
// dir is not created yet, accepts new files. Nothing is left behind.
func writableCheck(dir string) error {
	target, err := existingAncestor(dir)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(target, "lampsetup-write-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

func existingAncestor(dir string) (string, error) {
	path := filepath.Clean(dir)
	for {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			return path, nil
		case err == nil:
			return "", fmt.Errorf("%s is not a directory", path)
		case !errors.Is(err, fs.ErrNotExist):
			return "", err
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("no existing ancestor of %s", dir)
		}
		path = parent
	}
}

func diskCheck(path string, minGiB uint64) error {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return err
	}
	free := (stat.Bavail * uint64(stat.Bsize)) / (1024 * 1024 * 1024) //nolint:gosec // block size is positive
	if free < minGiB {
		return fmt.Errorf("free space %dGiB < %dGiB", free, minGiB)
	}
	return nil
}
