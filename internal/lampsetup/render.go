package lampsetup

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type renderData struct {
	Domain       string
	DocumentRoot string
}

func (cfg Config) renderData(domain string) renderData {
	return renderData{
		Domain:       domain,
		DocumentRoot: cfg.DocumentRoot(domain),
	}
}

// RenderVHost renders the Apache virtual host definition for domain.
func (cfg Config) RenderVHost(domain string) (string, error) {
	return renderTemplate("vhost.conf.tmpl", cfg.renderData(domain))
}

// RenderIndexPage renders the placeholder index.php for domain.
func (cfg Config) RenderIndexPage(domain string) (string, error) {
	return renderTemplate("index.php.tmpl", cfg.renderData(domain))
}

func renderTemplate(name string, data renderData) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
