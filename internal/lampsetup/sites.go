package lampsetup

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// SiteInfo is the parsed view of one virtual host block.
type SiteInfo struct {
	ServerName   string
	DocumentRoot string
	ConfigPath   string
}

var (
	serverNameRegex   = regexp.MustCompile(`(?i)^ServerName\s+(.+)`)
	documentRootRegex = regexp.MustCompile(`(?i)^DocumentRoot\s+(.+)`)
)

// ParseVHostFile extracts ServerName/DocumentRoot pairs from an Apache
// configuration file. A DocumentRoot is only recorded after a ServerName.
func ParseVHostFile(path string) ([]SiteInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sites []SiteInfo
	var current string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.EqualFold(line, "</VirtualHost>") {
			current = ""
			continue
		}
		if m := serverNameRegex.FindStringSubmatch(line); len(m) > 1 {
			current = strings.TrimSpace(m[1])
			continue
		}
		if current == "" {
			continue
		}
		if m := documentRootRegex.FindStringSubmatch(line); len(m) > 1 {
			root := strings.Trim(strings.TrimSpace(m[1]), `"'`)
			sites = append(sites, SiteInfo{ServerName: current, DocumentRoot: root, ConfigPath: path})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sites, nil
}

// ListSites parses every *.conf in dir, sorted by server name.
func ListSites(dir string) ([]SiteInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.conf"))
	if err != nil {
		return nil, err
	}
	var all []SiteInfo
	for _, p := range paths {
		sites, err := ParseVHostFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, sites...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ServerName < all[j].ServerName
	})
	return all, nil
}
