// Package snapshot implements reading of module snapshot files: a
// msgpack-encoded, dictionary-shaped description of a library's public
// surface, plus the .memlist existence sidecar.
package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/zerr"
)

// MemberListSuffix is appended to a snapshot path to locate its sidecar.
const MemberListSuffix = ".memlist"

// Decoder implements ports.SnapshotDecoder over msgpack snapshot files.
type Decoder struct{}

// NewDecoder creates a snapshot decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode opens the snapshot read-only and decodes its root record. The four
// consumed sections are "members", "doc", "filename" and "children"; unknown
// sections are ignored so newer encoders stay readable.
//
// I/O errors come back unwrapped; wire-level decode failures are
// domain.ErrSnapshotMalformed and shape violations domain.ErrSnapshotInvalid,
// which the loader treats as recoverable corruption.
func (d *Decoder) Decode(path string) (*domain.SnapshotDoc, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the configured databases
	if err != nil {
		return nil, err
	}

	var raw any
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrSnapshotMalformed, "path", path), "cause", err.Error())
	}

	root, ok := asStringMap(raw)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrSnapshotInvalid, "path", path), "reason", "root record is not a map")
	}

	doc := &domain.SnapshotDoc{}
	if err := d.decodeMembers(path, root, doc); err != nil {
		return nil, err
	}
	if s, ok := root["doc"].(string); ok {
		doc.Doc = s
	}
	if s, ok := root["filename"].(string); ok {
		doc.Filename = s
	}
	doc.Children = decodeChildren(root["children"])

	return doc, nil
}

func (d *Decoder) decodeMembers(path string, root map[string]any, doc *domain.SnapshotDoc) error {
	section, present := root["members"]
	if !present || section == nil {
		doc.Members = map[string]domain.MemberRecord{}
		return nil
	}
	table, ok := asStringMap(section)
	if !ok {
		return zerr.With(zerr.With(domain.ErrSnapshotInvalid, "path", path), "reason", "members section is not a map")
	}

	doc.Members = make(map[string]domain.MemberRecord, len(table))
	for name, rawRec := range table {
		rec, ok := asStringMap(rawRec)
		if !ok {
			return zerr.With(zerr.With(zerr.With(domain.ErrSnapshotInvalid, "path", path), "member", name), "reason", "member record is not a map")
		}
		out := domain.MemberRecord{}
		if s, ok := rec["kind"].(string); ok {
			out.Kind = s
		}
		if s, ok := rec["doc"].(string); ok {
			out.Doc = s
		}
		if b, ok := rec["include"].(bool); ok {
			include := b
			out.Include = &include
		}
		if s, ok := rec["ref"].(string); ok {
			out.Ref = s
		}
		doc.Members[name] = out
	}
	return nil
}

// decodeChildren accepts either a list-shaped encoding or a single string;
// non-string elements are skipped.
func decodeChildren(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	default:
		return nil
	}
}

// ReadMemberList reads the newline-delimited sidecar next to the snapshot.
// ok is false when no sidecar exists, which tells the loader to fall through
// to the full decode.
func (d *Decoder) ReadMemberList(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path + MemberListSuffix) //nolint:gosec // Derived from the snapshot path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to read member list sidecar"), "path", path)
	}

	lines := strings.Split(string(data), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimRight(line, "\r")
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, true, nil
}

// asStringMap normalizes the two map shapes msgpack can hand back.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	default:
		return nil, false
	}
}
