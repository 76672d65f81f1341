package storage

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndRead(t *testing.T) {
	archive, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.NewString()
	source := []byte("Txn Date,Narration,Debit,Credit\n15/01/2024,UPI-SWIGGY,450.00,\n")
	result := []byte(`{"transactions":[]}`)

	entry, err := archive.Save(ctx, docID, "statement.csv", "text/csv", source, result)
	require.NoError(t, err)
	assert.Equal(t, docID, entry.DocumentID)
	assert.Equal(t, int64(len(source)), entry.Size)
	assert.False(t, entry.ArchivedAt.IsZero())

	r, err := archive.Source(ctx, docID)
	require.NoError(t, err)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, source, got)

	stored, err := archive.Result(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, result, stored)

	info, err := archive.Info(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, "statement.csv", info.Name)
	assert.Equal(t, "text/csv", info.ContentType)
}

func TestLocal_List(t *testing.T) {
	archive, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := archive.Save(ctx, uuid.NewString(), "doc.pdf", "application/pdf", []byte("data"), nil)
		require.NoError(t, err)
	}

	entries, err := archive.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestLocal_Delete(t *testing.T) {
	archive, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.NewString()
	_, err = archive.Save(ctx, docID, "doc.pdf", "application/pdf", []byte("data"), nil)
	require.NoError(t, err)

	require.NoError(t, archive.Delete(ctx, docID))

	_, err = archive.Info(ctx, docID)
	assert.Error(t, err)

	assert.Error(t, archive.Delete(ctx, docID))
}

func TestLocal_SanitizesNames(t *testing.T) {
	archive, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	docID := uuid.NewString()
	_, err = archive.Save(ctx, docID, "../../../etc/passwd", "text/plain", []byte("data"), nil)
	require.NoError(t, err)

	r, err := archive.Source(ctx, docID)
	require.NoError(t, err)
	r.Close()
}

func TestLocal_MissingDocument(t *testing.T) {
	archive, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = archive.Info(ctx, "nope")
	assert.Error(t, err)
	_, err = archive.Result(ctx, "nope")
	assert.Error(t, err)
}
