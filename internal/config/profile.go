package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"sigcheck/internal/errors"
	"sigcheck/internal/report"
)

// Profile is a named severity policy loaded from a TOML file:
//
//	name = "lenient"
//
//	[severities]
//	ChangedScope = "warning"
//	RemovedMethod = "error"
//
// Profiles let teams share review policies without touching per-repo
// config files.
type Profile struct {
	Name       string            `toml:"name"`
	Severities map[string]string `toml:"severities"`
}

// LoadProfile reads and validates a severity profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.FileNotFound, "profile %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ConfigInvalid, "reading profile", err).At(path, 0)
	}
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, "parsing profile", err).At(path, 0)
	}
	for tag, name := range p.Severities {
		if _, ok := report.CanonicalIssue(tag); !ok {
			return nil, errors.Newf(errors.ConfigInvalid, "unknown issue tag %q in profile", tag).At(path, 0)
		}
		if _, err := report.ParseSeverity(name); err != nil {
			return nil, errors.Newf(errors.ConfigInvalid, "profile severity for %s: %v", tag, err).At(path, 0)
		}
	}
	return &p, nil
}

// Overrides converts the profile into the reporter's severity table form.
func (p *Profile) Overrides() map[report.Issue]report.Severity {
	if len(p.Severities) == 0 {
		return nil
	}
	out := make(map[report.Issue]report.Severity, len(p.Severities))
	for tag, name := range p.Severities {
		issue, ok := report.CanonicalIssue(tag)
		if !ok {
			continue
		}
		sev, err := report.ParseSeverity(name)
		if err != nil {
			continue
		}
		out[issue] = sev
	}
	return out
}
