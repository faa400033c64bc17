package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidSignature   = errors.New("invalid assertion signature")
	ErrStaleAssertion     = errors.New("assertion is too old")
	ErrMalformedAssertion = errors.New("assertion is missing required fields")
)

// assertionMaxAge is how long a signed assertion stays acceptable, in seconds.
const assertionMaxAge = 86400

// Assertion is the field set posted by the login widget. The hash field is
// the provider's signature over every other field except referrer_id, which
// is out-of-band referral metadata added by the site, not signed upstream.
type Assertion map[string]string

type WidgetVerifierInterface interface {
	Verify(a Assertion) error
	Sign(a Assertion) string
}

type WidgetVerifier struct {
	key []byte
	now func() time.Time
}

func NewWidgetVerifier(botToken string) *WidgetVerifier {
	key := sha256.Sum256([]byte(botToken))
	return &WidgetVerifier{key: key[:], now: time.Now}
}

func (v *WidgetVerifier) Verify(a Assertion) error {
	for _, field := range []string{"id", "auth_date", "hash"} {
		if a[field] == "" {
			return ErrMalformedAssertion
		}
	}
	authDate, err := strconv.ParseInt(a["auth_date"], 10, 64)
	if err != nil {
		return ErrMalformedAssertion
	}

	expected := v.Sign(a)
	if !hmac.Equal([]byte(expected), []byte(a["hash"])) {
		return ErrInvalidSignature
	}

	if v.now().Unix()-authDate > assertionMaxAge {
		return ErrStaleAssertion
	}
	return nil
}

// Sign computes the widget signature for an assertion: HMAC-SHA256 over the
// key-sorted "name=value" lines, keyed by SHA-256 of the bot token, rendered
// as lowercase hex.
func (v *WidgetVerifier) Sign(a Assertion) string {
	keys := make([]string, 0, len(a))
	for k := range a {
		if k == "hash" || k == "referrer_id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+a[k])
	}
	checkString := strings.TrimSpace(strings.Join(lines, "\n"))

	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
