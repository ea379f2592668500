package domain

// SnapshotDoc is the decoded root record of a snapshot file. The wire format
// is owned by the decoder adapter; the loader only consumes these four
// top-level sections, each of which may be absent.
type SnapshotDoc struct {
	// Members maps member name to its raw record.
	Members map[string]MemberRecord
	// Doc is the module-level documentation.
	Doc string
	// Filename is the source file the snapshot was generated from.
	Filename string
	// Children are the names of child modules, in snapshot order.
	Children []string
}

// MemberRecord is one raw, unresolved member entry of a snapshot.
type MemberRecord struct {
	// Kind is the wire kind: "type", "function", "module", "constant" or
	// "ref". Unknown kinds resolve to MemberUnknown.
	Kind string
	// Doc is the member documentation.
	Doc string
	// Include, for "type" records, controls surfacing as a module attribute.
	// Absent means included.
	Include *bool
	// Ref names a sibling record this record forwards to when Kind is "ref".
	// Forward references are legal: the target may appear later in the table.
	Ref string
}
