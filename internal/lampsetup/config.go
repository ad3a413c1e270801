package lampsetup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultWebRoot              = "/var/www"
	defaultSitesDir             = "/etc/apache2/sites-available"
	defaultWebUser              = "www-data"
	defaultPHPVersion           = "8.3"
	defaultBinDir               = "/usr/local/bin"
	defaultEnvFile              = "/etc/lampsetup/lampsetup.env"
	defaultComposerInstallerURL = "https://getcomposer.org/installer"
	defaultComposerSigURL       = "https://composer.github.io/installer.sig"
)

var phpVersionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

type Config struct {
	WebRoot              string
	SitesDir             string
	WebUser              string
	PHPVersion           string
	BinDir               string
	WorkDir              string
	ComposerInstallerURL string
	ComposerSigURL       string
	DNSServer            string
	Log                  LogConfig
}

func DefaultConfig() Config {
	return Config{
		WebRoot:              defaultWebRoot,
		SitesDir:             defaultSitesDir,
		WebUser:              defaultWebUser,
		PHPVersion:           defaultPHPVersion,
		BinDir:               defaultBinDir,
		WorkDir:              os.TempDir(),
		ComposerInstallerURL: defaultComposerInstallerURL,
		ComposerSigURL:       defaultComposerSigURL,
		Log:                  DefaultLogConfig(),
	}
}

// LoadConfig reads LAMPSETUP_* overrides from the environment. A dotenv file
// is loaded first; it never overrides variables that are already set.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	def := DefaultConfig()
	cfg := Config{
		WebRoot:              envOr("LAMPSETUP_WEB_ROOT", def.WebRoot),
		SitesDir:             envOr("LAMPSETUP_SITES_DIR", def.SitesDir),
		WebUser:              envOr("LAMPSETUP_WEB_USER", def.WebUser),
		PHPVersion:           envOr("LAMPSETUP_PHP_VERSION", def.PHPVersion),
		BinDir:               envOr("LAMPSETUP_BIN_DIR", def.BinDir),
		WorkDir:              envOr("LAMPSETUP_WORK_DIR", def.WorkDir),
		ComposerInstallerURL: envOr("LAMPSETUP_COMPOSER_INSTALLER_URL", def.ComposerInstallerURL),
		ComposerSigURL:       envOr("LAMPSETUP_COMPOSER_SIG_URL", def.ComposerSigURL),
		DNSServer:            envOr("LAMPSETUP_DNS_SERVER", ""),
		Log: LogConfig{
			Level:  envOr("LOG_LEVEL", def.Log.Level),
			Format: envOr("LOG_FORMAT", def.Log.Format),
			File:   envOr("LOG_FILE", ""),
		},
	}
	if !phpVersionPattern.MatchString(cfg.PHPVersion) {
		return Config{}, fmt.Errorf("invalid PHP version %q", cfg.PHPVersion)
	}
	return cfg, nil
}

// DocumentRoot is built without path cleaning so the rendered vhost names
// exactly <web-root>/<domain>.
func (cfg Config) DocumentRoot(domain string) string {
	return strings.TrimRight(cfg.WebRoot, "/") + "/" + domain
}

func (cfg Config) VHostFile(domain string) string {
	return domain + ".conf"
}

func (cfg Config) VHostPath(domain string) string {
	return filepath.Join(cfg.SitesDir, cfg.VHostFile(domain))
}

func loadDotEnv() error {
	path, explicit := os.LookupEnv("LAMPSETUP_ENV_FILE")
	path = strings.TrimSpace(path)
	if !explicit || path == "" {
		path = defaultEnvFile
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return fmt.Errorf("env file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
