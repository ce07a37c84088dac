package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. The middleware collapses all three into a
// single 401 but logs which one fired.
var ErrTokenMalformed = errors.New("token malformed")
var ErrBadSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// Claims is the identity carried inside a session token. Immutable once
// issued; Subject holds the user id.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed session tokens. Validity is
// fully determined by signature and expiry; there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity using the configured TTL.
func (s *TokenService) Issue(userID, username, role string) (string, error) {
	return s.IssueWithTTL(userID, username, role, s.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (s *TokenService) IssueWithTTL(userID, username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates token, returning its claims. The signature must
// match a fresh HS256 computation over the payload; any other algorithm in
// the header is rejected as a bad signature.
func (s *TokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}

// ParseTTL converts a configured lifetime into a duration. Accepted forms:
// anything time.ParseDuration takes ("1h30m"), a bare integer number of
// seconds ("3600"), and a day suffix ("7d") for parity with the original
// JWT_EXPIRES_IN values.
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, errors.New("invalid day duration: " + s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}
