package domain

// MemberKind discriminates the variants of a module member.
type MemberKind uint8

const (
	// MemberUnknown is the zero kind, used for unresolvable records.
	MemberUnknown MemberKind = iota
	// MemberType is a class or other named type.
	MemberType
	// MemberFunction is a callable.
	MemberFunction
	// MemberModule is a nested module.
	MemberModule
	// MemberConstant is a named value.
	MemberConstant
)

// String returns the snapshot wire name of the kind.
func (k MemberKind) String() string {
	switch k {
	case MemberType:
		return "type"
	case MemberFunction:
		return "function"
	case MemberModule:
		return "module"
	case MemberConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Member is a named entity exposed by a module.
type Member struct {
	// Name is the member's interned name.
	Name Symbol
	// Kind selects the variant.
	Kind MemberKind
	// Doc is the member's documentation, if the snapshot carries any.
	Doc string
	// IncludeInModule controls whether a MemberType is surfaced as a module
	// attribute. It is meaningful only for MemberType; other kinds are always
	// surfaced. Types excluded here still exist for internal type resolution
	// (class bodies not meant to appear in completion lists).
	IncludeInModule bool
}

// Hidden reports whether the member belongs in the hidden table rather than
// the enumerable member table.
func (m Member) Hidden() bool {
	return m.Kind == MemberType && !m.IncludeInModule
}
