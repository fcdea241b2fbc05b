package httputils

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"
)

type ctxKey int

const (
	requestInfoCtxKey ctxKey = iota
)

// SetRequestInfo returns a new context with set (or re-set) RequestInfo.
func SetRequestInfo(ctx context.Context, r *http.Request, appVersion string) (out context.Context, res RequestInfo) {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ipsl := strings.Split(fwd, ", ")
		res.RealIP = ipsl[0]
		if len(ipsl) > 1 {
			res.ProxyIPs = ipsl[1:]
		}
	}
	res.UserAgent = r.Header.Get("User-Agent")
	res.RequestID = r.Header.Get("X-Request-Id")

	if res.RealIP == "" && r.RemoteAddr != "" {
		res.RealIP = strings.Split(r.RemoteAddr, ":")[0]
	}
	if res.RequestID == "" {
		res.RequestID = appCreatedRequestID()
	}
	res.AppVersion = appVersion

	out = context.WithValue(ctx, requestInfoCtxKey, res)

	return out, res
}

// GetRequestInfo returns RequestInfo from the context.
func GetRequestInfo(ctx context.Context) (res RequestInfo) {
	res, _ = ctx.Value(requestInfoCtxKey).(RequestInfo)
	return res
}

// RequestInfo carries request metadata for logging.
type RequestInfo struct {
	RealIP     string
	ProxyIPs   []string
	UserAgent  string
	RequestID  string
	AppVersion string
}

func (ri RequestInfo) FirstProxyIP() string {
	if len(ri.ProxyIPs) > 0 {
		return ri.ProxyIPs[0]
	}
	return ""
}

// application created
// ac-2006-01-02T15:04:05.000-XXX###XXX
func appCreatedRequestID() string {
	return "ac-" + time.Now().Format("2006-01-02T15:04:05.000") + randString(9)
}

func randString(len int) string {
	b := make([]byte, len)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
