package lampsetup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVHost(t *testing.T) {
	cfg := DefaultConfig()

	got, err := cfg.RenderVHost("app.example.com")
	require.NoError(t, err)

	want := `<VirtualHost *:80>
    ServerName app.example.com
    ServerAlias *.app.example.com
    DocumentRoot /var/www/app.example.com
    <Directory /var/www/app.example.com>
        AllowOverride All
        Require all granted
    </Directory>
</VirtualHost>
`
	assert.Equal(t, want, got)
}

func TestRenderVHost_WebRootTrailingSlash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WebRoot = "/srv/www/"

	got, err := cfg.RenderVHost("example.com")
	require.NoError(t, err)
	assert.Contains(t, got, "    DocumentRoot /srv/www/example.com\n")
	assert.Contains(t, got, "    <Directory /srv/www/example.com>\n")
}

func TestRenderIndexPage(t *testing.T) {
	cfg := DefaultConfig()

	got, err := cfg.RenderIndexPage("app.example.com")
	require.NoError(t, err)
	assert.Equal(t, "<?php echo \"This is the app.example.com subdomain.\"; ?>\n", got)
}

func TestConfigPaths(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/var/www/app.example.com", cfg.DocumentRoot("app.example.com"))
	assert.Equal(t, "app.example.com.conf", cfg.VHostFile("app.example.com"))
	assert.Equal(t, "/etc/apache2/sites-available/app.example.com.conf", cfg.VHostPath("app.example.com"))
}
