package assets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_RequiresURL(t *testing.T) {
	_, err := NewStore(Config{})
	require.Error(t, err)
}

func TestClientFolder(t *testing.T) {
	assert.Equal(t, "clients/ada@example.com", ClientFolder("ada@example.com"))
}

func TestStore_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/ada@example.com", r.URL.Path)
		_, _ = w.Write([]byte(`{"objects":[{"name":"dress.glb","size":1024}]}`))
	}))
	defer srv.Close()

	store, err := NewStore(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	objs, err := store.List(context.Background(), ClientFolder("ada@example.com"))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, "dress.glb", objs[0].Name)
	assert.Equal(t, int64(1024), objs[0].Size)
}

func TestStore_List_MissingFolderIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store, err := NewStore(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	objs, err := store.List(context.Background(), "collection")
	require.NoError(t, err)
	assert.Empty(t, objs)
}

func TestStore_UploadDownloadDelete(t *testing.T) {
	var uploaded []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			uploaded, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			_, _ = w.Write(uploaded)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	store, err := NewStore(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "collection", "coat.glb", strings.NewReader("binary")))
	assert.Equal(t, "binary", string(uploaded))

	body, err := store.Download(ctx, "collection", "coat.glb")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, "binary", string(data))

	require.NoError(t, store.Delete(ctx, "collection", "coat.glb"))
}

func TestStore_UploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store, err := NewStore(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = store.Upload(context.Background(), "collection", "coat.glb", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload collection/coat.glb")
}
