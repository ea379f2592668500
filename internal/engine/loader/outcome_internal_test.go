package loader

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/sema/internal/core/domain"
	"go.trai.ch/sema/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// The load outcome is deliberately not part of the query API: callers always
// see "Loaded, possibly empty". These tests pin the internal classification.
func TestLoadOutcomeClassification(t *testing.T) {
	tests := []struct {
		name      string
		decodeErr error
		notify    bool
		want      domain.LoadOutcome
	}{
		{
			name: "success",
			want: domain.OutcomeSuccess,
		},
		{
			name:      "malformed snapshot is corrupt",
			decodeErr: domain.ErrSnapshotMalformed,
			notify:    true,
			want:      domain.OutcomeCorrupt,
		},
		{
			name:      "invalid structure is corrupt",
			decodeErr: domain.ErrSnapshotInvalid,
			notify:    true,
			want:      domain.OutcomeCorrupt,
		},
		{
			name:      "missing file is suppressed",
			decodeErr: os.ErrNotExist,
			want:      domain.OutcomeSuppressed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			decoder := mocks.NewMockSnapshotDecoder(ctrl)
			reader := mocks.NewMockMemberReader(ctrl)
			notifier := mocks.NewMockCorruptionNotifier(ctrl)
			logger := mocks.NewMockLogger(ctrl)

			if tt.decodeErr != nil {
				decoder.EXPECT().Decode(gomock.Any()).Return(nil, tt.decodeErr)
			} else {
				decoder.EXPECT().Decode(gomock.Any()).Return(&domain.SnapshotDoc{}, nil)
			}
			if tt.notify {
				notifier.EXPECT().SnapshotCorrupt(gomock.Any()).Times(1)
			}

			mod := New("m", "/db/m.idb", false, decoder, reader, notifier, logger)
			mod.EnsureLoaded(context.Background())

			require.Equal(t, domain.Loaded, mod.State())
			require.Equal(t, tt.want, mod.outcome)
		})
	}
}
