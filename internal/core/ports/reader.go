package ports

import "go.trai.ch/sema/internal/core/domain"

// MemberReader resolves one raw member record into a Member and hands it to
// emit. Records whose kind is "ref" may forward to sibling records that
// appear later in the table; a reader follows such chains through doc.
// Unresolvable records (dangling or cyclic references) are dropped without
// error.
//
//go:generate go run go.uber.org/mock/mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type MemberReader interface {
	Read(doc *domain.SnapshotDoc, name string, rec domain.MemberRecord, emit func(domain.Member)) error
}
