package lampsetup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Question identifies a yes/no prompt so it can be answered ahead of time.
type Question string

const (
	QuestionNewServer        Question = "new_server"
	QuestionContinueMismatch Question = "continue_on_dns_mismatch"
	QuestionApache           Question = "apache"
	QuestionPHP              Question = "php"
	QuestionMySQL            Question = "mysql"
	QuestionComposer         Question = "composer"
)

// Answers pre-supplies prompt responses. Nil fields are asked interactively.
type Answers struct {
	Domain                string `yaml:"domain,omitempty" toml:"domain,omitempty"`
	NewServer             *bool  `yaml:"new_server,omitempty" toml:"new_server,omitempty"`
	ContinueOnDNSMismatch *bool  `yaml:"continue_on_dns_mismatch,omitempty" toml:"continue_on_dns_mismatch,omitempty"`
	Apache                *bool  `yaml:"apache,omitempty" toml:"apache,omitempty"`
	PHP                   *bool  `yaml:"php,omitempty" toml:"php,omitempty"`
	MySQL                 *bool  `yaml:"mysql,omitempty" toml:"mysql,omitempty"`
	Composer              *bool  `yaml:"composer,omitempty" toml:"composer,omitempty"`
}

// LoadAnswers reads a YAML or TOML answers file, chosen by extension.
func LoadAnswers(path string) (Answers, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, err
	}

	var a Answers
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(b, &a); err != nil {
			return Answers{}, fmt.Errorf("parse answers %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(b, &a); err != nil {
			return Answers{}, fmt.Errorf("parse answers %s: %w", path, err)
		}
	}
	return a, nil
}

func (a Answers) lookup(q Question) *bool {
	switch q {
	case QuestionNewServer:
		return a.NewServer
	case QuestionContinueMismatch:
		return a.ContinueOnDNSMismatch
	case QuestionApache:
		return a.Apache
	case QuestionPHP:
		return a.PHP
	case QuestionMySQL:
		return a.MySQL
	case QuestionComposer:
		return a.Composer
	}
	return nil
}
