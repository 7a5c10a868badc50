package extractor

import (
	"strings"

	"docmine/doctree"
)

// buildParameters converts a member's formal parameter declarations into
// parameter models, preserving declaration order as position. Nullability
// comes from annotations on the declaration: a case-insensitive simple-name
// match against "nullable" yields nullable=true, "notnull" or "nonnull"
// yields nullable=false, first match wins, no match leaves it unset. For a
// variadic member the last parameter is recorded as an array of the declared
// element type, since downstream signature matching expects the array shape.
func buildParameters(member *doctree.Executable) []Parameter {
	params := make([]Parameter, len(member.Params))
	for i, p := range member.Params {
		var nullable *bool
		for _, a := range p.Annotations {
			switch strings.ToLower(a.SimpleName()) {
			case "nullable":
				v := true
				nullable = &v
			case "notnull", "nonnull":
				v := false
				nullable = &v
			}
			if nullable != nil {
				break
			}
		}

		typeName := p.Type
		if member.VarArgs && i == len(member.Params)-1 {
			typeName = p.Type + "[]"
		}

		params[i] = Parameter{
			Type:     NewTypeRef(typeName),
			Name:     p.Name,
			Position: i,
			Nullable: nullable,
		}
	}
	return params
}
