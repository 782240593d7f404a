package wordvec_test

import (
	"context"
	"fmt"
	"testing"

	mock_wordvec "github.com/at-ishikawa/semantle/internal/mocks/wordvec"
	"github.com/at-ishikawa/semantle/internal/vectormath"
	"github.com/at-ishikawa/semantle/internal/wordvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int {
	return &v
}

func TestCache_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		setupMock func(m *mock_wordvec.MockClientMockRecorder)
		want      wordvec.Record
		wantErr   error
	}{
		{
			name: "word in the top 1000",
			word: "dog",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "dog").
					Return([]byte(`{"vec": [0.1, 0.2, 0.3], "percentile": 990}`), nil)
			},
			want: wordvec.Record{
				Word:       "dog",
				Vector:     vectormath.Vector{0.1, 0.2, 0.3},
				Percentile: intPtr(990),
			},
		},
		{
			name: "word outside the top 1000 and surrounding spaces",
			word: "  table ",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "table").
					Return([]byte(`{"vec": [1, 0, 0]}`), nil)
			},
			want: wordvec.Record{
				Word:   "table",
				Vector: vectormath.Vector{1, 0, 0},
			},
		},
		{
			name: "unknown word",
			word: "qwzx",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "qwzx").
					Return(nil, fmt.Errorf("%w: qwzx", wordvec.ErrNotFound)).
					Times(2)
			},
			wantErr: wordvec.ErrNotFound,
		},
		{
			name: "missing vec",
			word: "dog",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "dog").
					Return([]byte(`{"percentile": 3}`), nil).
					Times(2)
			},
			wantErr: wordvec.ErrNotFound,
		},
		{
			name: "null body",
			word: "dog",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "dog").Return([]byte(`null`), nil).
					Times(2)
			},
			wantErr: wordvec.ErrNotFound,
		},
		{
			name: "service unreachable",
			word: "dog",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {
				m.FetchModel(gomock.Any(), "cat", "dog").
					Return(nil, fmt.Errorf("%w: connection refused", wordvec.ErrLookupFailed)).
					Times(2)
			},
			wantErr: wordvec.ErrLookupFailed,
		},
		{
			name:      "empty word",
			word:      "   ",
			setupMock: func(m *mock_wordvec.MockClientMockRecorder) {},
			wantErr:   wordvec.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_wordvec.NewMockClient(ctrl)
			tt.setupMock(client.EXPECT())

			cache := wordvec.NewCache(client, "cat")
			got, err := cache.Resolve(context.Background(), tt.word)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// failures are not cached, so the service is asked again
				_, err = cache.Resolve(context.Background(), tt.word)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			cached, err := cache.Resolve(context.Background(), tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cached)
		})
	}
}

func TestCache_Resolve_memoizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_wordvec.NewMockClient(ctrl)
	client.EXPECT().
		FetchModel(gomock.Any(), "cat", "dog").
		Return([]byte(`{"vec": [0.5, 0.5]}`), nil).
		Times(1)

	cache := wordvec.NewCache(client, "cat")
	first, err := cache.Resolve(context.Background(), "dog")
	require.NoError(t, err)
	second, err := cache.Resolve(context.Background(), " dog ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCache_Resolve_doesNotCacheNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_wordvec.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().
			FetchModel(gomock.Any(), "cat", "newword").
			Return(nil, wordvec.ErrNotFound),
		client.EXPECT().
			FetchModel(gomock.Any(), "cat", "newword").
			Return([]byte(`{"vec": [1, 2]}`), nil),
	)

	cache := wordvec.NewCache(client, "cat")
	_, err := cache.Resolve(context.Background(), "newword")
	assert.ErrorIs(t, err, wordvec.ErrNotFound)

	got, err := cache.Resolve(context.Background(), "newword")
	require.NoError(t, err)
	assert.Equal(t, vectormath.Vector{1, 2}, got.Vector)
}

func TestCache_Resolve_withFileCache(t *testing.T) {
	dir := t.TempDir()

	t.Run("first cache fetches from the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_wordvec.NewMockClient(ctrl)
		client.EXPECT().
			FetchModel(gomock.Any(), "cat", "dog").
			Return([]byte(`{"vec": [0.1, 0.9], "percentile": 12}`), nil).
			Times(1)
		client.EXPECT().
			FetchModel(gomock.Any(), "cat", "qwzx").
			Return(nil, wordvec.ErrNotFound).
			Times(1)

		cache := wordvec.NewCache(client, "cat", wordvec.WithFileCache(wordvec.NewFileCache(dir)))
		_, err := cache.Resolve(context.Background(), "dog")
		require.NoError(t, err)
		_, err = cache.Resolve(context.Background(), "qwzx")
		assert.ErrorIs(t, err, wordvec.ErrNotFound)
	})

	t.Run("second cache reads from disk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_wordvec.NewMockClient(ctrl)
		client.EXPECT().
			FetchModel(gomock.Any(), "cat", "qwzx").
			Return(nil, wordvec.ErrNotFound).
			Times(1)

		cache := wordvec.NewCache(client, "cat", wordvec.WithFileCache(wordvec.NewFileCache(dir)))
		got, err := cache.Resolve(context.Background(), "dog")
		require.NoError(t, err)
		assert.Equal(t, wordvec.Record{
			Word:       "dog",
			Vector:     vectormath.Vector{0.1, 0.9},
			Percentile: intPtr(12),
		}, got)

		_, err = cache.Resolve(context.Background(), "qwzx")
		assert.ErrorIs(t, err, wordvec.ErrNotFound)
	})
}
