// Package baseline persists known findings so that established issues stop
// failing runs while new regressions still do. A baseline mutes a finding
// only when both the issue tag and the named element match exactly.
package baseline

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"sigcheck/internal/errors"
	"sigcheck/internal/report"
)

const fileVersion = 1

// Entry identifies one accepted finding.
type Entry struct {
	Issue   string `yaml:"issue"`
	Element string `yaml:"element"`
}

type file struct {
	Version  int     `yaml:"version"`
	Findings []Entry `yaml:"findings"`
}

// Baseline is a loaded set of accepted findings.
type Baseline struct {
	entries map[Entry]bool
}

// New creates an empty baseline.
func New() *Baseline {
	return &Baseline{entries: map[Entry]bool{}}
}

// Load reads a baseline file. A missing file is not an error; it behaves
// as an empty baseline so first runs need no setup.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.Wrap(errors.ConfigInvalid, "reading baseline", err).At(path, 0)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, "parsing baseline", err).At(path, 0)
	}
	if f.Version != 0 && f.Version != fileVersion {
		return nil, errors.Newf(errors.ConfigInvalid, "unsupported baseline version %d", f.Version).At(path, 0)
	}
	b := New()
	for _, e := range f.Findings {
		b.entries[e] = true
	}
	return b, nil
}

// Mutes reports whether the issue/element pair is accepted.
func (b *Baseline) Mutes(issue, element string) bool {
	return b.entries[Entry{Issue: issue, Element: element}]
}

// Add records a finding as accepted.
func (b *Baseline) Add(issue, element string) {
	b.entries[Entry{Issue: issue, Element: element}] = true
}

// AddFindings records every finding of a run, for baseline regeneration.
func (b *Baseline) AddFindings(findings []report.Finding) {
	for _, f := range findings {
		b.Add(string(f.Issue), f.Element)
	}
}

// Save writes the baseline with entries sorted for stable diffs.
func (b *Baseline) Save(path string) error {
	f := file{Version: fileVersion}
	for e := range b.entries {
		f.Findings = append(f.Findings, e)
	}
	sort.Slice(f.Findings, func(i, j int) bool {
		a, z := f.Findings[i], f.Findings[j]
		if a.Element != z.Element {
			return a.Element < z.Element
		}
		return a.Issue < z.Issue
	})
	data, err := yaml.Marshal(&f)
	if err != nil {
		return errors.Wrap(errors.InternalError, "encoding baseline", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.InternalError, "writing baseline", err).At(path, 0)
	}
	return nil
}

// Len returns the number of accepted findings.
func (b *Baseline) Len() int { return len(b.entries) }
