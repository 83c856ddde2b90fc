package token

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256 requires a 32-byte key. The secret is normalized the same way in
// every benchmark variant so tokens issued by one service verify in another:
// repeat the secret until it reaches 32 bytes, then truncate.
const keyLen = 32

const defaultExpireMinutes = 60

var signingKey []byte
var expireMinutes int

func LoadConfig() error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	b := []byte(secret)
	for len(b) < keyLen {
		b = append(b, b...)
	}
	signingKey = b[:keyLen]

	expireMinutes = defaultExpireMinutes
	if v := os.Getenv("JWT_EXPIRE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_EXPIRE_MINUTES: %v", err)
		}
		expireMinutes = n
	}

	return nil
}

// Claims is the verified content of a bearer token.
type Claims struct {
	UserId  string
	IsAdmin bool
}

func Sign(userId string, isAdmin bool) (string, error) {
	if signingKey == nil {
		return "", errors.New("token config not loaded")
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userId,
		"is_admin": isAdmin,
		"exp":      jwt.NewNumericDate(time.Now().Add(time.Duration(expireMinutes) * time.Minute)),
	})

	signed, err := t.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %v", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry and returns the claims. Any
// malformed, expired, or mis-signed token fails outright.
func Verify(tokenStr string) (*Claims, error) {
	if signingKey == nil {
		return nil, errors.New("token config not loaded")
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("error verifying token: %v", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("token has no subject")
	}

	isAdmin, _ := mapClaims["is_admin"].(bool)

	return &Claims{
		UserId:  sub,
		IsAdmin: isAdmin,
	}, nil
}
