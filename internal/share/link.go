package share

import (
	"net/url"
	"strings"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// QueryParam is the URL query parameter that carries a share token.
const QueryParam = "share"

// Link builds "<baseURL>?share=<token>". Existing query parameters of baseURL
// are kept. It returns "" when the bank cannot be encoded or baseURL is not a
// valid URL.
func Link(baseURL string, bank *questionbank.QuestionBank) string {
	token := Encode(bank)
	if token == "" {
		return ""
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	u.Fragment = ""
	return u.String()
}

// TokenFromURL returns the share parameter of raw when raw is a URL carrying
// one, and raw itself otherwise. It lets callers accept either a full link or
// a bare token.
func TokenFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "?") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if token := u.Query().Get(QueryParam); token != "" {
		return token
	}
	return raw
}
