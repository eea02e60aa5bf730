package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jcpachecoh/cbtw-recruitment/internal/domain"
)

// sessionTTL es fijo: la cookie y el claim exp expiran a las 24 horas.
const sessionTTL = 24 * time.Hour

const sessionIssuer = "cbtw-recruitment"

// ErrSessionInvalid cubre firma incorrecta, payload malformado y expiracion.
// Una sesion invalida es un resultado esperado, no una condicion de error.
var ErrSessionInvalid = errors.New("session invalid")

// SessionClaims es la asercion de sesion autocontenida; no se persiste en el
// servidor.
type SessionClaims struct {
	UserID     string `json:"uid"`
	Email      string `json:"email"`
	UserName   string `json:"userName"`
	UserType   string `json:"userType"`
	UserStatus string `json:"userStatus"`
	jwt.RegisteredClaims
}

// SessionService firma y verifica aserciones de sesion.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewSessionService(secret string) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		ttl:    sessionTTL,
		issuer: sessionIssuer,
	}
}

// TTL devuelve la vigencia fija de la sesion.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Sign emite una asercion firmada para el usuario autenticado.
func (s *SessionService) Sign(user domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSessionInvalid
	}
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID:     user.ID,
		Email:      user.Email,
		UserName:   user.UserName,
		UserType:   user.UserType,
		UserStatus: user.UserStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma, estructura y expiracion de la asercion.
func (s *SessionService) Verify(tokenString string) (SessionClaims, error) {
	if len(s.secret) == 0 {
		return SessionClaims{}, ErrSessionInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return SessionClaims{}, ErrSessionInvalid
	}

	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return SessionClaims{}, ErrSessionInvalid
	}
	if !s.isValidClaims(claims) {
		return SessionClaims{}, ErrSessionInvalid
	}
	return claims, nil
}

func (s *SessionService) isValidClaims(claims SessionClaims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
