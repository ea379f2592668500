package ports

// CorruptionNotifier is told when a snapshot turned out to be corrupt. The
// notification carries no payload beyond the snapshot path; the owning
// session decides whether to log, count, or schedule regeneration.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type CorruptionNotifier interface {
	SnapshotCorrupt(path string)
}
