package lampsetup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionSite(t *testing.T) {
	t.Run("writes vhost and index page", func(t *testing.T) {
		runner := newFakeRunner()
		host, _ := newTestHost(t, runner)
		cfg := host.Config

		err := host.ProvisionSite(context.Background(), "app.example.com")
		require.NoError(t, err)

		docRoot := cfg.DocumentRoot("app.example.com")
		assert.DirExists(t, docRoot)

		vhost, err := os.ReadFile(filepath.Join(cfg.SitesDir, "app.example.com.conf"))
		require.NoError(t, err)
		want, err := cfg.RenderVHost("app.example.com")
		require.NoError(t, err)
		assert.Equal(t, want, string(vhost))

		index, err := os.ReadFile(filepath.Join(docRoot, "index.php"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "This is the app.example.com subdomain.")

		assert.Equal(t, []string{
			"a2enmod rewrite",
			"a2ensite app.example.com.conf",
			"systemctl restart apache2",
			"chown -R www-data:www-data " + docRoot,
		}, runner.Calls())
	})

	t.Run("rejects invalid domain before touching the host", func(t *testing.T) {
		runner := newFakeRunner()
		host, _ := newTestHost(t, runner)

		for _, domain := range []string{"", "bad domain", "..", "."} {
			err := host.ProvisionSite(context.Background(), domain)
			assert.ErrorIs(t, err, ErrInvalidDomain, domain)
		}
		assert.Empty(t, runner.Calls())
		assert.NoDirExists(t, host.Config.WebRoot)
	})

	t.Run("stops at the first failing command", func(t *testing.T) {
		runner := newFakeRunner()
		runner.fail["a2enmod rewrite"] = errors.New("exit status 1")
		host, _ := newTestHost(t, runner)

		err := host.ProvisionSite(context.Background(), "example.com")

		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, "Configuring virtual host", stepErr.Step)
		assert.Equal(t, "a2enmod rewrite", stepErr.Command)
		assert.Equal(t, []string{"a2enmod rewrite"}, runner.Calls())
		assert.NoFileExists(t, host.Config.VHostPath("example.com"))
	})

	t.Run("restart failure leaves no index page", func(t *testing.T) {
		runner := newFakeRunner()
		runner.fail["systemctl restart apache2"] = errors.New("exit status 1")
		host, _ := newTestHost(t, runner)

		err := host.ProvisionSite(context.Background(), "example.com")
		require.Error(t, err)
		assert.FileExists(t, host.Config.VHostPath("example.com"))
		assert.NoFileExists(t, filepath.Join(host.Config.DocumentRoot("example.com"), "index.php"))
		assert.Equal(t, -1, runner.indexOf("chown"))
	})
}

func TestPlan_SiteGating(t *testing.T) {
	t.Run("site configured when apache selected", func(t *testing.T) {
		runner := newFakeRunner()
		host, _ := newTestHost(t, runner)

		steps := host.Plan(context.Background(), Options{
			Domain:   "example.com",
			Packages: Packages{Apache: true},
		})

		names := stepNames(steps)
		assert.Equal(t, []string{"Refreshing package index", "Installing Apache", "Configuring virtual host"}, names)
	})

	t.Run("site configured when apache already installed", func(t *testing.T) {
		runner := newFakeRunner()
		runner.outputs["dpkg -s apache2"] = "Status: install ok installed\n"
		host, _ := newTestHost(t, runner)

		steps := host.Plan(context.Background(), Options{Domain: "example.com", Composer: true})

		assert.Equal(t, []string{"Configuring virtual host", "Installing Composer"}, stepNames(steps))
	})

	t.Run("site skipped without apache", func(t *testing.T) {
		runner := newFakeRunner()
		runner.fail["dpkg -s apache2"] = errors.New("package 'apache2' is not installed")
		host, out := newTestHost(t, runner)

		steps := host.Plan(context.Background(), Options{
			Domain:   "example.com",
			Packages: Packages{PHP: true},
		})
		require.Len(t, steps, 3)
		assert.Equal(t, "Installing PHP", steps[1].Name)

		require.NoError(t, steps[2].Run(context.Background()))
		assert.Contains(t, out.String(), "Skipping virtual host setup")
		assert.NoDirExists(t, host.Config.WebRoot)
	})
}

func TestRunSteps_FailFast(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	steps := []Step{
		{Name: "one", Run: func(context.Context) error { ran = append(ran, "one"); return nil }},
		{Name: "two", Run: func(context.Context) error { ran = append(ran, "two"); return boom }},
		{Name: "three", Run: func(context.Context) error { ran = append(ran, "three"); return nil }},
	}

	err := RunSteps(context.Background(), steps)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"one", "two"}, ran)
}

func stepNames(steps []Step) []string {
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}
