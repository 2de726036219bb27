package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Короткие ответы не сжимаются
const minCompressSize = 512

// Compress - gzip для JSON ответов, если клиент его принимает
func Compress() (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minCompressSize),
		gzhttp.ContentTypes([]string{"application/json"}),
	)
	if err != nil {
		return nil, err
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
