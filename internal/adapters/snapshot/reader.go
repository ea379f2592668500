package snapshot

import (
	"go.trai.ch/sema/internal/core/domain"
)

// Reader implements ports.MemberReader: it resolves raw member records into
// members, following "ref" records through sibling entries. Forward
// references are fine — the target record only has to exist somewhere in the
// table, not before the referring record.
type Reader struct{}

// NewReader creates a member reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read resolves rec and emits the resulting member. Dangling and cyclic
// references are dropped silently: one bad record must not poison the rest
// of the module.
func (r *Reader) Read(doc *domain.SnapshotDoc, name string, rec domain.MemberRecord, emit func(domain.Member)) error {
	seen := map[string]struct{}{name: {}}
	resolved, ok := resolve(doc, rec, seen)
	if !ok {
		return nil
	}

	mem := domain.Member{
		Name: domain.Sym(name),
		Kind: memberKind(resolved.Kind),
		Doc:  resolved.Doc,
		// Non-type members are always surfaced; types default to included.
		IncludeInModule: true,
	}
	if rec.Doc != "" {
		// The referring record's own doc wins over the target's.
		mem.Doc = rec.Doc
	}
	if mem.Kind == domain.MemberType && resolved.Include != nil {
		mem.IncludeInModule = *resolved.Include
	}
	emit(mem)
	return nil
}

// resolve follows ref chains until a concrete record is reached.
func resolve(doc *domain.SnapshotDoc, rec domain.MemberRecord, seen map[string]struct{}) (domain.MemberRecord, bool) {
	if rec.Kind != "ref" {
		return rec, true
	}
	if _, cyclic := seen[rec.Ref]; cyclic {
		return domain.MemberRecord{}, false
	}
	target, ok := doc.Members[rec.Ref]
	if !ok {
		return domain.MemberRecord{}, false
	}
	seen[rec.Ref] = struct{}{}
	return resolve(doc, target, seen)
}

func memberKind(wire string) domain.MemberKind {
	switch wire {
	case "type":
		return domain.MemberType
	case "function":
		return domain.MemberFunction
	case "module":
		return domain.MemberModule
	case "constant":
		return domain.MemberConstant
	default:
		return domain.MemberUnknown
	}
}
