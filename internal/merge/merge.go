// Package merge combines partial API snapshots into one codebase. Unioning
// happens at class granularity: a class may appear in any number of inputs
// as long as every occurrence describes the identical API, so that split
// snapshot pipelines can overlap without drift going unnoticed.
package merge

import (
	"sigcheck/internal/errors"
	"sigcheck/internal/model"
	"sigcheck/internal/sigfile"
)

// Codebases merges the inputs into a single codebase. Duplicate classes
// must serialize to identical canonical text; any divergence is a fatal
// conflict naming both definitions.
func Codebases(description string, inputs []*model.Codebase) (*model.Codebase, error) {
	type seenClass struct {
		class *model.Class
		text  string
	}
	packages := map[string]*model.Package{}
	classes := map[string]seenClass{}
	var order []string

	for _, cb := range inputs {
		for _, pkg := range cb.Packages {
			merged, ok := packages[pkg.Name]
			if !ok {
				merged = &model.Package{Name: pkg.Name, ItemBase: pkg.ItemBase}
				packages[pkg.Name] = merged
				order = append(order, pkg.Name)
			}
			for _, cls := range pkg.Classes {
				prev, dup := classes[cls.QualifiedName]
				if !dup {
					classes[cls.QualifiedName] = seenClass{class: cls, text: sigfile.ClassText(cls)}
					merged.Classes = append(merged.Classes, cls)
					continue
				}
				if text := sigfile.ClassText(cls); text != prev.text {
					return nil, errors.Newf(errors.MergeConflict,
						"conflicting definitions of %s: %s does not match %s",
						cls.QualifiedName, cls.Location(), prev.class.Location()).
						At(cls.Location().File, cls.Location().Line)
				}
			}
		}
	}

	out := make([]*model.Package, 0, len(order))
	for _, name := range order {
		out = append(out, packages[name])
	}
	model.SortPackages(out)
	return model.NewCodebase(description, out), nil
}

// Files loads every snapshot path and merges the results.
func Files(paths []string) (*model.Codebase, error) {
	inputs := make([]*model.Codebase, 0, len(paths))
	for _, path := range paths {
		cb, err := sigfile.Load(path, sigfile.ParseOptions{})
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, cb)
	}
	return Codebases("merged", inputs)
}
