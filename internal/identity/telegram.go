// Package identity verifies Telegram Mini App login payloads. The client
// sends the raw init data string it received from Telegram; the server
// recomputes the HMAC over the sorted key=value pairs with a secret derived
// from the bot token and rejects anything forged or stale.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/Kombinat_Go/internal/domain"
)

// Verifier checks Telegram init data signatures
type Verifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time // Injectable for testing
}

// NewVerifier derives the signing secret from the bot token
func NewVerifier(botToken string, maxAge time.Duration) *Verifier {
	mac := hmac.New(sha256.New, []byte(webAppSecretConstant))
	mac.Write([]byte(botToken))
	if maxAge <= 0 {
		maxAge = DefaultMaxAuthAge
	}
	return &Verifier{
		secret: mac.Sum(nil),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// telegramUser mirrors the user JSON embedded in init data
type telegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

// Verify validates the raw init data string and returns the verified user
func (v *Verifier) Verify(initData string) (*domain.User, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMalformedPayload, err)
	}

	hash := values.Get(FieldHash)
	if hash == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgMissingHash)
	}

	if !v.signatureValid(values, hash) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgBadSignature)
	}

	authDate, err := strconv.ParseInt(values.Get(FieldAuthDate), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgMalformedPayload)
	}
	if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgStaleAuth)
	}

	rawUser := values.Get(FieldUser)
	if rawUser == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgMissingUser)
	}
	var tu telegramUser
	if err := json.Unmarshal([]byte(rawUser), &tu); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgMalformedPayload)
	}
	if tu.ID == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidIdentity, ErrMsgMissingUser)
	}

	return &domain.User{
		ID:        strconv.FormatInt(tu.ID, 10),
		FirstName: tu.FirstName,
		Username:  tu.Username,
		PhotoURL:  tu.PhotoURL,
	}, nil
}

// signatureValid recomputes the HMAC over every field except the hash itself,
// sorted by key and joined with newlines
func (v *Verifier) signatureValid(values url.Values, hash string) bool {
	pairs := make([]string, 0, len(values))
	for key := range values {
		if key == FieldHash {
			continue
		}
		pairs = append(pairs, key+"="+values.Get(key))
	}
	sort.Strings(pairs)

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strings.Join(pairs, "\n")))
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(hash)) == 1
}
