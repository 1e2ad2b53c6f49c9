// Package share turns a question bank into a self-contained, URL-safe token
// and back. A token carries the whole bank, so opening a share link needs no
// server round trip to fetch the original.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// MaxTokenLength bounds the size of a token Decode will look at.
const MaxTokenLength = 4 << 20

var validate = validator.New()

// Encode serializes bank into a token made only of [A-Za-z0-9_-]. It returns
// the empty string when the bank cannot be serialized, which callers treat as
// "sharing unavailable".
func Encode(bank *questionbank.QuestionBank) string {
	if bank == nil {
		return ""
	}
	payload := *bank
	if payload.Problems == nil {
		payload.Problems = []questionbank.Problem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&payload); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Decode recovers a bank from a token. The token arrives from a URL and is
// untrusted: any malformed input yields nil, never an error or a panic. A bank
// that would not pass QuestionBank.Validate, such as one with repeated problem
// ids, counts as malformed.
//
// Tokens written with the standard base64 alphabet (with or without padding,
// and with '+' turned into ' ' by form decoding) are accepted as well.
func Decode(token string) (bank *questionbank.QuestionBank) {
	defer func() {
		if recover() != nil {
			bank = nil
		}
	}()

	token = strings.TrimSpace(token)
	if token == "" || len(token) > MaxTokenLength {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(normalize(token))
	if err != nil {
		return nil
	}
	if !utf8.Valid(raw) {
		return nil
	}

	var decoded questionbank.QuestionBank
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	if err := validate.Struct(&decoded); err != nil {
		return nil
	}
	if err := decoded.Validate(); err != nil {
		return nil
	}
	return &decoded
}

// normalize maps the standard base64 alphabet onto the URL alphabet and drops
// padding.
func normalize(token string) string {
	r := strings.NewReplacer(" ", "-", "+", "-", "/", "_")
	return strings.TrimRight(r.Replace(token), "=")
}
