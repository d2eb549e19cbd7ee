package report

import "strings"

// Issue is the stable classification tag attached to every finding.
type Issue string

const (
	IssueAddedPackage   Issue = "AddedPackage"
	IssueAddedClass     Issue = "AddedClass"
	IssueAddedMethod    Issue = "AddedMethod"
	IssueAddedField     Issue = "AddedField"
	IssueAddedInterface Issue = "AddedInterface"
	IssueAddedSealed    Issue = "AddedSealed"
	IssueAddedReified   Issue = "AddedReified"
	IssueAddedFinal     Issue = "AddedFinal"
	// IssueAddedFinalUninstantiable is the advisory variant of AddedFinal
	// for classes nothing external could ever have subclassed.
	IssueAddedFinalUninstantiable Issue = "AddedFinalUninstantiable"

	IssueRemovedPackage          Issue = "RemovedPackage"
	IssueRemovedClass            Issue = "RemovedClass"
	IssueRemovedMethod           Issue = "RemovedMethod"
	IssueRemovedField            Issue = "RemovedField"
	IssueRemovedInterface        Issue = "RemovedInterface"
	IssueRemovedFinal            Issue = "RemovedFinal"
	IssueRemovedDeprecatedClass  Issue = "RemovedDeprecatedClass"
	IssueRemovedDeprecatedMethod Issue = "RemovedDeprecatedMethod"
	IssueRemovedDeprecatedField  Issue = "RemovedDeprecatedField"
	IssueRemovedJvmDefaultWithCompatibility Issue = "RemovedJvmDefaultWithCompatibility"

	IssueChangedClass       Issue = "ChangedClass"
	IssueChangedScope       Issue = "ChangedScope"
	IssueChangedAbstract    Issue = "ChangedAbstract"
	IssueChangedDefault     Issue = "ChangedDefault"
	IssueChangedStatic      Issue = "ChangedStatic"
	IssueChangedNative      Issue = "ChangedNative"
	IssueChangedVolatile    Issue = "ChangedVolatile"
	IssueChangedSuperclass  Issue = "ChangedSuperclass"
	IssueChangedThrows      Issue = "ChangedThrows"
	IssueChangedType        Issue = "ChangedType"
	IssueChangedValue       Issue = "ChangedValue"
	IssueChangedDeprecated  Issue = "ChangedDeprecated"

	IssueOperatorRemoval       Issue = "OperatorRemoval"
	IssueInfixRemoval          Issue = "InfixRemoval"
	IssueFunRemoval            Issue = "FunRemoval"
	IssueVarargRemoval         Issue = "VarargRemoval"
	IssueParameterNameChange   Issue = "ParameterNameChange"
	IssueDefaultValueChange    Issue = "DefaultValueChange"
	IssueInvalidNullConversion Issue = "InvalidNullConversion"
	IssueBecameUnchecked       Issue = "BecameUnchecked"
)

// allIssues is the registry of every tag a finding can carry.
var allIssues = []Issue{
	IssueAddedPackage,
	IssueAddedClass,
	IssueAddedMethod,
	IssueAddedField,
	IssueAddedInterface,
	IssueAddedSealed,
	IssueAddedReified,
	IssueAddedFinal,
	IssueAddedFinalUninstantiable,
	IssueRemovedPackage,
	IssueRemovedClass,
	IssueRemovedMethod,
	IssueRemovedField,
	IssueRemovedInterface,
	IssueRemovedFinal,
	IssueRemovedDeprecatedClass,
	IssueRemovedDeprecatedMethod,
	IssueRemovedDeprecatedField,
	IssueRemovedJvmDefaultWithCompatibility,
	IssueChangedClass,
	IssueChangedScope,
	IssueChangedAbstract,
	IssueChangedDefault,
	IssueChangedStatic,
	IssueChangedNative,
	IssueChangedVolatile,
	IssueChangedSuperclass,
	IssueChangedThrows,
	IssueChangedType,
	IssueChangedValue,
	IssueChangedDeprecated,
	IssueOperatorRemoval,
	IssueInfixRemoval,
	IssueFunRemoval,
	IssueVarargRemoval,
	IssueParameterNameChange,
	IssueDefaultValueChange,
	IssueInvalidNullConversion,
	IssueBecameUnchecked,
}

// canonicalIssues maps the folded form of every registered tag back to its
// canonical spelling. Config front ends that fold map-key case (viper
// lowercases JSON keys) resolve tags through this table.
var canonicalIssues = func() map[string]Issue {
	m := make(map[string]Issue, len(allIssues))
	for _, issue := range allIssues {
		m[strings.ToLower(string(issue))] = issue
	}
	return m
}()

// CanonicalIssue resolves a tag name to its registered spelling,
// case-insensitively. The second result is false for unknown tags.
func CanonicalIssue(name string) (Issue, bool) {
	issue, ok := canonicalIssues[strings.ToLower(name)]
	return issue, ok
}

// defaultSeverities is the built-in issue-to-severity table. Anything not
// listed defaults to Error: unknown transitions are treated as breaking
// until classified otherwise.
var defaultSeverities = map[Issue]Severity{
	// Additions widen the surface; surfaced for awareness, never fatal by
	// default.
	IssueAddedPackage:   SeverityInfo,
	IssueAddedClass:     SeverityInfo,
	IssueAddedMethod:    SeverityInfo,
	IssueAddedField:     SeverityInfo,
	IssueAddedInterface: SeverityInfo,

	// Advisory: the class could never have been subclassed externally.
	IssueAddedFinalUninstantiable: SeverityInfo,

	// Deprecation transitions are informational in both directions.
	IssueChangedDeprecated: SeverityInfo,

	// Binary-relevant but not API-breaking; strictness is configurable.
	IssueChangedNative: SeverityInfo,

	// Removals of already-deprecated items carry lower urgency.
	IssueRemovedDeprecatedClass:  SeverityWarning,
	IssueRemovedDeprecatedMethod: SeverityWarning,
	IssueRemovedDeprecatedField:  SeverityWarning,
}

// DefaultSeverity returns the built-in severity for an issue.
func DefaultSeverity(issue Issue) Severity {
	if sev, ok := defaultSeverities[issue]; ok {
		return sev
	}
	return SeverityError
}
