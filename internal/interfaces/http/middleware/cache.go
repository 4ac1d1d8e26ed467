// internal/interfaces/http/middleware/cache.go
package middleware

import (
	"bytes"
	"net/http"

	"github.com/beammart/backend/internal/infrastructure/cache"
	"github.com/gin-gonic/gin"
)

type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse memoizes GET responses in Redis under a key derived from the
// request path and the named query parameters. Hits are replayed with
// X-Cache: HIT; only 2xx responses are stored.
func CacheResponse(store *cache.Store, params ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		selected := make(map[string]string, len(params))
		for _, p := range params {
			if v, ok := c.GetQuery(p); ok {
				selected[p] = v
			}
		}

		key := store.Key(c.Request.Method, c.Request.URL.Path, selected)

		if cached, err := store.Get(c.Request.Context(), key); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		c.Header("X-Cache", "MISS")

		writer := &cachingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			store.Set(c.Request.Context(), key, &cache.CachedResponse{
				Status:      status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
		}
	}
}
