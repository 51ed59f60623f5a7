package api

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/clinicmatch/internal/security"
	"github.com/terraincognita07/clinicmatch/internal/services"
	"golang.org/x/crypto/hkdf"
)

const (
	selectionTokenPurpose = "specialty_selection"
	selectionTokenTTL     = 30 * time.Minute
)

var errInvalidSelectionToken = errors.New("invalid specialty selection token")

type selectionClaims struct {
	Specialty string `json:"specialty"`
	Purpose   string `json:"purpose"`
	jwt.RegisteredClaims
}

// selectionCookieCodec signs the chosen specialty so it survives the
// redirect to the clinic picker without server-side session state.
type selectionCookieCodec struct {
	key []byte
	now func() time.Time
}

func newSelectionCookieCodec(secretKey []byte) (*selectionCookieCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("selection cookie secret key is required")
	}

	key := make([]byte, 32)
	reader := hkdf.New(sha256.New, secretKey, nil, []byte("clinicmatch.specialty-selection.v1"))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive selection cookie key: %w", err)
	}
	return &selectionCookieCodec{key: key, now: time.Now}, nil
}

func (codec *selectionCookieCodec) seal(specialty string) (string, error) {
	tokenID, err := security.RandomString(12, security.TokenAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate selection token id: %w", err)
	}

	now := codec.now()
	claims := selectionClaims{
		Specialty: specialty,
		Purpose:   selectionTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(selectionTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(codec.key)
}

func (codec *selectionCookieCodec) open(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errInvalidSelectionToken
	}

	claims := &selectionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return codec.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(codec.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid || claims.Purpose != selectionTokenPurpose {
		return "", errInvalidSelectionToken
	}

	specialty, ok := services.CanonicalSpecialty(claims.Specialty)
	if !ok {
		return "", errInvalidSelectionToken
	}
	return specialty, nil
}

func (handler *Handler) setSelectionCookie(c *fiber.Ctx, specialty string) error {
	value, err := handler.selections.seal(specialty)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     selectionCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(selectionTokenTTL),
	})
	return nil
}

func (handler *Handler) selectedSpecialty(c *fiber.Ctx) (string, bool) {
	specialty, err := handler.selections.open(c.Cookies(selectionCookieName))
	if err != nil {
		return "", false
	}
	return specialty, true
}

func (handler *Handler) clearSelectionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     selectionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
