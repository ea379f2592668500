package ports

// ContentType is the slice of the editor's content-type model the registry
// consumes: a name and the declared base types, forming a DAG. The order of
// BaseTypes is significant — it decides which registration wins when more
// than one base carries a service.
//
//go:generate go run go.uber.org/mock/mockgen -source=contenttype.go -destination=mocks/mock_contenttype.go -package=mocks
type ContentType interface {
	Name() string
	BaseTypes() []ContentType
}
