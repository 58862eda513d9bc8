package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"agendai_backend/internals/configs"
)

const (
	AccessTTL  = 60 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return string(hash), nil
}

func CompararSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// claims: sub = email, tag = papel (aluno|professor|universidade),
// type = access|refresh. O middleware de auth só aceita type=access.
func assinarToken(email, papel, tipo, segredo string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  strings.ToLower(email),
		"tag":  papel,
		"type": tipo,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := tok.SignedString([]byte(segredo))
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token: %w", err)
	}
	return assinado, nil
}

func CriarAccessToken(email, papel string) (string, error) {
	return assinarToken(email, papel, "access", configs.JWTSecret, AccessTTL)
}

func CriarRefreshToken(email, papel string) (string, error) {
	return assinarToken(email, papel, "refresh", configs.JWTRefreshSecret, RefreshTTL)
}

// DecodificarRefresh valida assinatura, expiração e o claim type do refresh
// token e devolve (email, papel).
func DecodificarRefresh(tokenStr string) (string, string, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", "", fmt.Errorf("refresh token inválido")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("refresh token inválido")
	}
	if tipo, _ := claims["type"].(string); tipo != "refresh" {
		return "", "", fmt.Errorf("token não é um refresh token")
	}
	email, _ := claims["sub"].(string)
	papel, _ := claims["tag"].(string)
	if email == "" || papel == "" {
		return "", "", fmt.Errorf("refresh token sem claims obrigatórios")
	}
	return email, papel, nil
}
