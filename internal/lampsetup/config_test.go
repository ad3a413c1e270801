package lampsetup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LAMPSETUP_ENV_FILE", writeFile(t, "empty.env", ""))

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/var/www", cfg.WebRoot)
		assert.Equal(t, "/etc/apache2/sites-available", cfg.SitesDir)
		assert.Equal(t, "www-data", cfg.WebUser)
		assert.Equal(t, "8.3", cfg.PHPVersion)
		assert.Equal(t, "/usr/local/bin", cfg.BinDir)
		assert.Equal(t, "https://getcomposer.org/installer", cfg.ComposerInstallerURL)
		assert.Equal(t, "https://composer.github.io/installer.sig", cfg.ComposerSigURL)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LAMPSETUP_ENV_FILE", writeFile(t, "empty.env", ""))
		t.Setenv("LAMPSETUP_WEB_ROOT", "/srv/www")
		t.Setenv("LAMPSETUP_PHP_VERSION", "8.1")
		t.Setenv("LAMPSETUP_DNS_SERVER", "1.1.1.1:53")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "/srv/www", cfg.WebRoot)
		assert.Equal(t, "8.1", cfg.PHPVersion)
		assert.Equal(t, "1.1.1.1:53", cfg.DNSServer)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("dotenv file fills unset variables", func(t *testing.T) {
		const key = "LAMPSETUP_WEB_USER"
		_, preset := os.LookupEnv(key)
		require.False(t, preset)
		t.Cleanup(func() { _ = os.Unsetenv(key) })

		t.Setenv("LAMPSETUP_ENV_FILE", writeFile(t, "lampsetup.env", "LAMPSETUP_WEB_USER=apache\n"))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "apache", cfg.WebUser)
	})

	t.Run("explicit env file must exist", func(t *testing.T) {
		t.Setenv("LAMPSETUP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

		_, err := LoadConfig()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid php version", func(t *testing.T) {
		t.Setenv("LAMPSETUP_ENV_FILE", writeFile(t, "empty.env", ""))
		t.Setenv("LAMPSETUP_PHP_VERSION", "8; rm -rf /")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid PHP version")
	})
}
