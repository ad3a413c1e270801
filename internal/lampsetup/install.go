package lampsetup

import (
	"context"
	"errors"
	"os/exec"
)

const (
	stepRefresh = "Refreshing package index"
	stepApache  = "Installing Apache"
	stepPHP     = "Installing PHP"
	stepMySQL   = "Installing MySQL"

	phpRepository = "ppa:ondrej/php"
)

var phpExtensions = []string{"mysql", "cli", "curl", "gd", "mbstring", "xml", "zip"}

// PackageSteps returns the install steps for the selected packages in the
// fixed order apt refresh, Apache, PHP, MySQL.
func (h *Host) PackageSteps(p Packages) []Step {
	if !p.Any() {
		return nil
	}
	steps := []Step{{Name: stepRefresh, Run: h.RefreshPackages}}
	if p.Apache {
		steps = append(steps, Step{Name: stepApache, Run: h.InstallApache})
	}
	if p.PHP {
		steps = append(steps, Step{Name: stepPHP, Run: h.InstallPHP})
	}
	if p.MySQL {
		steps = append(steps, Step{Name: stepMySQL, Run: h.InstallMySQL})
	}
	return steps
}

func (h *Host) RefreshPackages(ctx context.Context) error {
	h.printf("==> %s\n", stepRefresh)
	return h.exec(ctx, stepRefresh, "apt-get", "update")
}

func (h *Host) InstallApache(ctx context.Context) error {
	h.printf("==> %s\n", stepApache)
	return h.execAll(ctx, stepApache, [][]string{
		{"apt-get", "install", "-y", "apache2"},
		serviceCmd("enable", "apache2"),
		serviceCmd("start", "apache2"),
		{"ufw", "allow", "Apache Full"},
	})
}

func (h *Host) InstallPHP(ctx context.Context) error {
	h.printf("==> %s %s\n", stepPHP, h.Config.PHPVersion)
	php := "php" + h.Config.PHPVersion
	install := []string{"apt-get", "install", "-y", php, "libapache2-mod-" + php}
	for _, ext := range phpExtensions {
		install = append(install, php+"-"+ext)
	}
	return h.execAll(ctx, stepPHP, [][]string{
		{"apt-get", "install", "-y", "software-properties-common"},
		{"add-apt-repository", "-y", phpRepository},
		{"apt-get", "update"},
		install,
		{"a2enmod", php},
		{"apache2ctl", "configtest"},
		serviceCmd("restart", "apache2"),
	})
}

func (h *Host) InstallMySQL(ctx context.Context) error {
	h.printf("==> %s\n", stepMySQL)
	if err := h.exec(ctx, stepMySQL, "apt-get", "install", "-y", "mysql-server"); err != nil {
		return err
	}
	h.printf("MySQL is installed. Run 'sudo mysql_secure_installation' to secure it.\n")
	return nil
}

// ApacheInstalled reports whether the apache2 package is already present.
func (h *Host) ApacheInstalled(ctx context.Context) bool {
	_, err := h.Runner.Output(ctx, "dpkg", "-s", "apache2")
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			h.Logger.Debug("dpkg unavailable", "err", err)
		}
		return false
	}
	return true
}

func serviceCmd(action, unit string) []string {
	return []string{"systemctl", action, unit}
}
