package extractor

import (
	"strings"

	"docmine/doctree"
)

// exceptionName resolves a throws tag's written exception name to a fully
// qualified name, best effort: a name the provider can resolve is returned
// qualified; otherwise the containing type's imports are searched for an
// entry whose simple name matches; otherwise the written name is returned
// unchanged.
func (x *Extractor) exceptionName(written string, member *doctree.Executable) string {
	containing := member.Declaring()
	if resolved := x.provider.Resolve(written, containing); resolved != "" {
		return resolved
	}
	if containing != nil {
		for _, imp := range containing.Imports {
			if simpleName(imp) == written {
				return imp
			}
		}
	}
	return written
}

func simpleName(qualified string) string {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[idx+1:]
	}
	return qualified
}
