package lampsetup

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	stepComposer = "Installing Composer"

	composerInstallerName = "composer-setup.php"
	composerPharName      = "composer.phar"
	composerBinaryName    = "composer"
)

func (h *Host) ComposerStep() Step {
	return Step{Name: stepComposer, Run: h.InstallComposer}
}

// InstallComposer downloads the Composer installer, checks it against the
// published SHA-384 signature, runs it and moves the phar into BinDir. A
// mismatching installer is removed and ErrChecksumMismatch is returned.
func (h *Host) InstallComposer(ctx context.Context) error {
	cfg := h.Config
	h.printf("==> %s\n", stepComposer)

	if err := ensureDir(cfg.WorkDir, 0o755); err != nil {
		return &StepError{Step: stepComposer, Command: "mkdir " + cfg.WorkDir, Err: err}
	}
	installer := filepath.Join(cfg.WorkDir, composerInstallerName)

	actual, err := h.download(ctx, cfg.ComposerInstallerURL, installer)
	if err != nil {
		_ = os.Remove(installer)
		return &StepError{Step: stepComposer, Command: "download " + cfg.ComposerInstallerURL, Err: err}
	}

	expected, err := h.fetchSignature(ctx, cfg.ComposerSigURL)
	if err != nil {
		_ = os.Remove(installer)
		return &StepError{Step: stepComposer, Command: "download " + cfg.ComposerSigURL, Err: err}
	}

	if !strings.EqualFold(actual, expected) {
		h.Logger.Error("installer checksum mismatch", "expected", expected, "actual", actual)
		if err := os.Remove(installer); err != nil && !errors.Is(err, os.ErrNotExist) {
			h.Logger.Warn("could not remove corrupt installer", "path", installer, "err", err)
		}
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, expected, actual)
	}
	h.printf("Installer verified\n")

	if err := h.exec(ctx, stepComposer, "php", installer, "--install-dir="+cfg.WorkDir, "--filename="+composerPharName); err != nil {
		return err
	}
	if err := os.Remove(installer); err != nil {
		return &StepError{Step: stepComposer, Command: "rm " + installer, Err: err}
	}

	target := filepath.Join(cfg.BinDir, composerBinaryName)
	if err := ensureDir(cfg.BinDir, 0o755); err != nil {
		return &StepError{Step: stepComposer, Command: "mkdir " + cfg.BinDir, Err: err}
	}
	if err := moveFile(filepath.Join(cfg.WorkDir, composerPharName), target); err != nil {
		return &StepError{Step: stepComposer, Command: "mv " + composerPharName + " " + target, Err: err}
	}
	if err := os.Chmod(target, 0o755); err != nil { //nolint:gosec // executable for all users
		return &StepError{Step: stepComposer, Command: "chmod +x " + target, Err: err}
	}

	h.Logger.Info("composer installed", "path", target)
	h.printf("Composer installed at %s\n", target)
	return nil
}

// download saves url to dest and returns the hex SHA-384 of the body.
func (h *Host) download(ctx context.Context, url, dest string) (string, error) {
	body, err := h.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644) //nolint:gosec // installer is not secret
	if err != nil {
		return "", err
	}
	sum := sha512.New384()
	if _, err := io.Copy(io.MultiWriter(f, sum), body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

func (h *Host) fetchSignature(ctx context.Context, url string) (string, error) {
	body, err := h.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	b, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return "", err
	}
	sig := strings.TrimSpace(string(b))
	if sig == "" {
		return "", errors.New("empty installer signature")
	}
	return sig, nil
}

func (h *Host) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
