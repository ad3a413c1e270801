package lampsetup

import (
	"context"
	"fmt"
)

// Provisioner drives one interactive provisioning run.
type Provisioner struct {
	host     *Host
	prompter Prompter
	dns      *DNSChecker
}

func NewProvisioner(host *Host, prompter Prompter, dns *DNSChecker) *Provisioner {
	return &Provisioner{host: host, prompter: prompter, dns: dns}
}

// Run asks the questions in order (domain, new server, DNS mismatch,
// packages, composer) and executes each phase as soon as its answers are
// known. The first failure ends the run.
func (p *Provisioner) Run(ctx context.Context) (Options, error) {
	var opts Options
	var err error

	opts.Domain, err = p.prompter.AskDomain(ctx)
	if err != nil {
		return opts, err
	}
	p.host.Logger.Info("domain selected", "domain", opts.Domain)

	opts.NewServer, err = p.prompter.Confirm(ctx, QuestionNewServer,
		"Is this a new server? Install Apache, PHP and MySQL without asking", false)
	if err != nil {
		return opts, err
	}

	if err := p.VerifyDNS(ctx, opts.Domain); err != nil {
		return opts, err
	}

	opts.Packages, err = p.choosePackages(ctx, opts.NewServer)
	if err != nil {
		return opts, err
	}

	if err := RunSteps(ctx, p.host.PackageSteps(opts.Packages)); err != nil {
		return opts, err
	}

	site := p.host.SiteStep(opts.Domain)
	if !opts.Packages.Apache && !p.host.ApacheInstalled(ctx) {
		site = p.host.skipSiteStep()
	}
	if err := site.Run(ctx); err != nil {
		return opts, err
	}

	opts.Composer, err = p.prompter.Confirm(ctx, QuestionComposer, "Install Composer", true)
	if err != nil {
		return opts, err
	}
	if opts.Composer {
		if err := p.host.InstallComposer(ctx); err != nil {
			return opts, err
		}
	}

	p.host.printf("\nDone. %s is set up (packages: %s).\n", opts.Domain, opts.Packages)
	return opts, nil
}

// VerifyDNS warns when domain does not point at this host and returns
// ErrAborted unless the operator chooses to continue.
func (p *Provisioner) VerifyDNS(ctx context.Context, domain string) error {
	res, err := p.dns.Check(ctx, domain)
	if err != nil {
		return err
	}
	if res.Match {
		p.host.printf("DNS OK: %s resolves to this server (%s).\n", domain, res.ServerIP)
		return nil
	}

	p.host.printf("WARNING: %s resolves to %s but this server's IP is %s.\n",
		domain, DisplayIP(res.ResolvedIP), DisplayIP(res.ServerIP))
	ok, err := p.prompter.Confirm(ctx, QuestionContinueMismatch, "Continue anyway", false)
	if err != nil {
		return err
	}
	if !ok {
		p.host.Logger.Warn("aborted on dns mismatch", "domain", domain)
		return fmt.Errorf("%w: %s does not point to this server", ErrAborted, domain)
	}
	return nil
}

func (p *Provisioner) choosePackages(ctx context.Context, newServer bool) (Packages, error) {
	if newServer {
		return AllPackages(), nil
	}
	var pkgs Packages
	for _, info := range PackageCatalog {
		on, err := p.prompter.Confirm(ctx, info.Question, "Install "+info.Label, false)
		if err != nil {
			return pkgs, err
		}
		pkgs.Set(info.Name, on)
	}
	return pkgs, nil
}

// DisplayIP renders an empty address as "(none)".
func DisplayIP(ip string) string {
	if ip == "" {
		return "(none)"
	}
	return ip
}
