package api

import (
	"net/http"
	"strings"
)

// anonymousClient is the bucket shared by every request that carries no
// forwarding headers. Lumping them together is deliberate: it is better than
// no protection, even though header-less clients then share one quota.
const anonymousClient = "anonymous"

// ClientIdentifier derives the rate-limit bucket for a request. The first
// address in X-Forwarded-For wins, then X-Real-IP, then the anonymous
// sentinel. Values are taken as-is; behind a trusted proxy they are the
// client IP, without one they are merely a best-effort grouping key.
func ClientIdentifier(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if rip := strings.TrimSpace(r.Header.Get("X-Real-Ip")); rip != "" {
		return rip
	}
	return anonymousClient
}
