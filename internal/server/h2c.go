package server

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// WrapH2C: 핸들러에 HTTP/2 Cleartext(h2c) 처리를 씌운다.
// 평문 연결에서 prior-knowledge HTTP/2를 받아들이고, HTTP/1.1 요청은 그대로 통과시킵니다.
func WrapH2C(handler http.Handler) http.Handler {
	return h2c.NewHandler(handler, &http2.Server{})
}
