package lampsetup

import "strings"

type Package string

const (
	PackageApache Package = "apache"
	PackagePHP    Package = "php"
	PackageMySQL  Package = "mysql"
)

type PackageInfo struct {
	Name        Package
	Label       string
	Description string
	Question    Question
}

// PackageCatalog lists the installable packages in installation order.
var PackageCatalog = []PackageInfo{
	{
		Name:        PackageApache,
		Label:       "Apache",
		Description: "apache2 web server, enabled at boot and allowed through ufw",
		Question:    QuestionApache,
	},
	{
		Name:        PackagePHP,
		Label:       "PHP",
		Description: "PHP from ppa:ondrej/php with the Apache module and common extensions",
		Question:    QuestionPHP,
	},
	{
		Name:        PackageMySQL,
		Label:       "MySQL",
		Description: "mysql-server (run mysql_secure_installation afterwards)",
		Question:    QuestionMySQL,
	},
}

// Packages records which packages the operator chose to install.
type Packages struct {
	Apache bool
	PHP    bool
	MySQL  bool
}

func AllPackages() Packages {
	return Packages{Apache: true, PHP: true, MySQL: true}
}

func (p Packages) Has(name Package) bool {
	switch name {
	case PackageApache:
		return p.Apache
	case PackagePHP:
		return p.PHP
	case PackageMySQL:
		return p.MySQL
	}
	return false
}

func (p *Packages) Set(name Package, on bool) {
	switch name {
	case PackageApache:
		p.Apache = on
	case PackagePHP:
		p.PHP = on
	case PackageMySQL:
		p.MySQL = on
	}
}

func (p Packages) Any() bool {
	return p.Apache || p.PHP || p.MySQL
}

// Labels returns the selected package labels in installation order.
func (p Packages) Labels() []string {
	var out []string
	for _, info := range PackageCatalog {
		if p.Has(info.Name) {
			out = append(out, info.Label)
		}
	}
	return out
}

func (p Packages) String() string {
	labels := p.Labels()
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

// Options is the explicit state threaded through a provisioning run.
type Options struct {
	Domain    string
	NewServer bool
	Packages  Packages
	Composer  bool
}
