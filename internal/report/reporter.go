package report

import (
	"fmt"

	"sigcheck/internal/model"
)

// Finding is one reported compatibility issue.
type Finding struct {
	Issue    Issue          `json:"tag"`
	Severity Severity       `json:"-"`
	// SeverityName is the rendered severity for JSON output.
	SeverityName string         `json:"severity"`
	Location     model.Location `json:"-"`
	// Where is the rendered location for JSON output.
	Where string `json:"location"`
	// Element is the stable item identifier, also used as the baseline key.
	Element string `json:"element"`
	Message string `json:"message"`
}

// String renders the finding as a single report line.
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s [%s]", f.Location, f.Severity, f.Message, f.Issue)
}

// Baseline mutes findings that were previously recorded and accepted.
type Baseline interface {
	Mutes(tag string, element string) bool
}

// Options configures a Reporter. The zero value uses the built-in
// severity table, no baseline and no logger.
type Options struct {
	// Severities overrides the default issue-to-severity table per tag.
	Severities map[Issue]Severity
	Baseline   Baseline
}

// Reporter accumulates findings for one comparison pass. It never stops on
// the first incompatibility: the full set is always collected so tooling
// can show every problem at once. A Reporter must not be shared between
// concurrent comparisons; give each invocation its own.
type Reporter struct {
	opts     Options
	findings []Finding
	fatal    bool
	muted    int
}

// NewReporter creates a finding accumulator with the given policy.
func NewReporter(opts Options) *Reporter {
	return &Reporter{opts: opts}
}

// severity resolves the effective severity for an issue.
func (r *Reporter) severity(issue Issue) Severity {
	if sev, ok := r.opts.Severities[issue]; ok {
		return sev
	}
	return DefaultSeverity(issue)
}

// Report records one finding against an item, applying suppression policy:
// findings on compatibility-suppressed items are dropped entirely, as are
// findings whose effective severity is hidden or which the baseline mutes.
func (r *Reporter) Report(issue Issue, item model.Item, message string) {
	if item.CompatSuppressed() {
		return
	}
	sev := r.severity(issue)
	if sev == SeverityHidden {
		return
	}
	element := item.Describe()
	if r.opts.Baseline != nil && r.opts.Baseline.Mutes(string(issue), element) {
		r.muted++
		return
	}
	r.findings = append(r.findings, Finding{
		Issue:        issue,
		Severity:     sev,
		SeverityName: sev.String(),
		Location:     item.Location(),
		Where:        item.Location().String(),
		Element:      element,
		Message:      message,
	})
	if sev == SeverityError {
		r.fatal = true
	}
}

// Findings returns the recorded findings in report order.
func (r *Reporter) Findings() []Finding { return r.findings }

// FoundProblems reports whether any recorded finding is at the fatal tier.
func (r *Reporter) FoundProblems() bool { return r.fatal }

// MutedCount reports how many findings the baseline swallowed.
func (r *Reporter) MutedCount() int { return r.muted }

// Counts returns the number of findings per severity tier.
func (r *Reporter) Counts() (errors, warnings, infos int) {
	for _, f := range r.findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return
}
