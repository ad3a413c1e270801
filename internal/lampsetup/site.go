package lampsetup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const stepSite = "Configuring virtual host"

func (h *Host) SiteStep(domain string) Step {
	return Step{
		Name: stepSite,
		Run: func(ctx context.Context) error {
			return h.ProvisionSite(ctx, domain)
		},
	}
}

// ProvisionSite enables mod_rewrite, writes the document root, vhost file
// and placeholder page for domain, enables the site and hands the document
// root to the web server user.
func (h *Host) ProvisionSite(ctx context.Context, domain string) error {
	if err := ValidateDomain(domain); err != nil {
		return err
	}

	cfg := h.Config
	docRoot := cfg.DocumentRoot(domain)
	h.printf("==> %s for %s\n", stepSite, domain)

	if err := h.exec(ctx, stepSite, "a2enmod", "rewrite"); err != nil {
		return err
	}
	if err := ensureDir(docRoot, 0o755); err != nil {
		return h.fileError("mkdir "+docRoot, err)
	}

	vhost, err := cfg.RenderVHost(domain)
	if err != nil {
		return fmt.Errorf("render vhost: %w", err)
	}
	if err := ensureDir(cfg.SitesDir, 0o755); err != nil {
		return h.fileError("mkdir "+cfg.SitesDir, err)
	}
	vhostPath := cfg.VHostPath(domain)
	if err := os.WriteFile(vhostPath, []byte(vhost), 0o644); err != nil { //nolint:gosec // apache config is world readable
		return h.fileError("write "+vhostPath, err)
	}
	h.Logger.Info("wrote vhost", "path", vhostPath)

	if err := h.exec(ctx, stepSite, "a2ensite", cfg.VHostFile(domain)); err != nil {
		return err
	}
	restart := serviceCmd("restart", "apache2")
	if err := h.exec(ctx, stepSite, restart[0], restart[1:]...); err != nil {
		return err
	}

	index, err := cfg.RenderIndexPage(domain)
	if err != nil {
		return fmt.Errorf("render index page: %w", err)
	}
	indexPath := filepath.Join(docRoot, "index.php")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil { //nolint:gosec // served by apache
		return h.fileError("write "+indexPath, err)
	}

	owner := cfg.WebUser + ":" + cfg.WebUser
	if err := h.exec(ctx, stepSite, "chown", "-R", owner, docRoot); err != nil {
		return err
	}

	h.printf("Site %s is served from %s (%s)\n", domain, docRoot, vhostPath)
	return nil
}

func (h *Host) fileError(op string, err error) error {
	h.Logger.Error("file operation failed", "op", op, "err", err)
	return &StepError{Step: stepSite, Command: op, Err: err}
}
