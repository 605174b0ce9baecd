package restclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulate-console/pkg/log"
	"consulate-console/pkg/restclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *restclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return restclient.New(restclient.Config{
		BaseURL:     srv.URL,
		AccessToken: "test-token",
	}, log.NewNop())
}

func TestClientGet(t *testing.T) {
	t.Run("decodes envelope and forwards query string", func(t *testing.T) {
		var gotPath, gotQuery, gotAuth string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":[{"id":"n-1","title":"Fête nationale"}],"meta":{"page":1,"limit":10,"total":1,"total_pages":1}}`))
		})

		var out struct {
			Data []map[string]string `json:"data"`
			Meta map[string]int      `json:"meta"`
		}
		q := url.Values{}
		q.Set("title", "fête")
		q.Set("page", "1")

		err := c.Get(context.Background(), "/news", q, &out)
		require.NoError(t, err)

		assert.Equal(t, "/news", gotPath)
		assert.Equal(t, "page=1&title=f%C3%AAte", gotQuery)
		assert.Equal(t, "Bearer test-token", gotAuth)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "n-1", out.Data[0]["id"])
		assert.Equal(t, 1, out.Meta["total_pages"])
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[],"meta":{"page":1,"limit":10,"total":0,"total_pages":0}}`))
		})

		var out struct {
			Data []json.RawMessage `json:"data"`
		}
		err := c.Get(context.Background(), "/events", nil, &out)
		require.NoError(t, err)
		assert.Empty(t, out.Data)
	})

	t.Run("non-2xx becomes APIError with upstream message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"actualité introuvable"}`))
		})

		err := c.Get(context.Background(), "/news/missing", nil, &struct{}{})
		require.Error(t, err)

		apiErr, ok := restclient.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "actualité introuvable", apiErr.Message)
		assert.True(t, restclient.IsNotFound(err))
		assert.False(t, restclient.IsRetryable(err))
	})

	t.Run("5xx is retryable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := c.Get(context.Background(), "/videos", nil, &struct{}{})
		require.Error(t, err)
		assert.True(t, restclient.IsRetryable(err))
	})

	t.Run("network failure carries status 0", func(t *testing.T) {
		c := restclient.New(restclient.Config{BaseURL: "http://127.0.0.1:1"}, log.NewNop())

		err := c.Get(context.Background(), "/news", nil, &struct{}{})
		require.Error(t, err)

		apiErr, ok := restclient.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 0, apiErr.Status)
		assert.True(t, restclient.IsRetryable(err))
	})
}

func TestClientMutations(t *testing.T) {
	t.Run("PostJSON sends JSON content type", func(t *testing.T) {
		var gotContentType string
		var gotBody map[string]any
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"e-1","title":"Conférence"}`))
		})

		var out map[string]string
		err := c.PostJSON(context.Background(), "/events", map[string]string{"title": "Conférence"}, &out)
		require.NoError(t, err)

		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "Conférence", gotBody["title"])
		assert.Equal(t, "e-1", out["id"])
	})

	t.Run("PostForm sends multipart content type", func(t *testing.T) {
		var gotContentType string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			w.Write([]byte(`{"id":"p-1"}`))
		})

		form := restclient.NewForm()
		require.NoError(t, form.AddField("title", "Galerie 14 juillet"))

		var out map[string]string
		err := c.PostForm(context.Background(), "/photos", form, &out)
		require.NoError(t, err)

		assert.Contains(t, gotContentType, "multipart/form-data; boundary=")
		assert.Equal(t, "p-1", out["id"])
	})

	t.Run("Delete ignores response body", func(t *testing.T) {
		var gotMethod string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.Write([]byte(`{"success":true}`))
		})

		err := c.Delete(context.Background(), "/users/u-1")
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
	})

	t.Run("second delete surfaces structured 404, never panics", func(t *testing.T) {
		deleted := false
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if deleted {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"message":"utilisateur introuvable"}`))
				return
			}
			deleted = true
			w.Write([]byte(`{"success":true}`))
		})

		require.NoError(t, c.Delete(context.Background(), "/users/u-1"))

		err := c.Delete(context.Background(), "/users/u-1")
		require.Error(t, err)
		assert.True(t, restclient.IsNotFound(err))
	})
}
