package server_test

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/net/http2"

	"github.com/kapu/trending-insights-go/internal/server"
)

// 간단한 핸들러
func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}

func newH2CClient() *http.Client {
	return &http.Client{Transport: &http2.Transport{
		AllowHTTP: true,
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, network, addr)
		},
	}}
}

// TestH2CProtocolDetection: H2C 프로토콜이 실제로 사용되는지 확인
func TestH2CProtocolDetection(t *testing.T) {
	ts := httptest.NewServer(server.WrapH2C(healthHandler()))
	defer ts.Close()

	resp, err := newH2CClient().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("H2C 요청 실패: %v", err)
	}
	defer resp.Body.Close()

	if resp.ProtoMajor != 2 {
		t.Errorf("예상: HTTP/2, 실제: HTTP/%d.%d", resp.ProtoMajor, resp.ProtoMinor)
	}
}

// TestHTTP1Fallback: H2C 서버가 HTTP/1.1 클라이언트도 지원하는지 확인
func TestHTTP1Fallback(t *testing.T) {
	ts := httptest.NewServer(server.WrapH2C(healthHandler()))
	defer ts.Close()

	h1Client := &http.Client{Transport: &http.Transport{ForceAttemptHTTP2: false}}

	resp, err := h1Client.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("HTTP/1.1 요청 실패: %v", err)
	}
	defer resp.Body.Close()

	if resp.ProtoMajor != 1 {
		t.Errorf("예상: HTTP/1.1, 실제: HTTP/%d.%d", resp.ProtoMajor, resp.ProtoMinor)
	}
}
