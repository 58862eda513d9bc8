package service

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	codigoTTL       = 15 * time.Minute
	tokenTTL        = 15 * time.Minute
	maxTentativas   = 3
	tamanhoDoCodigo = 6
)

type codigoReset struct {
	Codigo     string
	Expira     time.Time
	Tentativas int
}

type tokenReset struct {
	Email  string
	Expira time.Time
}

// RecuperacaoStore guarda os códigos e tokens do fluxo "esqueci a senha"
// em memória. O estado é efêmero de propósito: reiniciar o processo só
// obriga o usuário a pedir um código novo.
type RecuperacaoStore struct {
	mu      sync.Mutex
	codigos map[string]*codigoReset // chave: email
	tokens  map[string]*tokenReset  // chave: token uuid
}

// Recuperacao é a instância usada pelo controller; main liga o janitor nela.
var Recuperacao = NewRecuperacaoStore()

func NewRecuperacaoStore() *RecuperacaoStore {
	return &RecuperacaoStore{
		codigos: make(map[string]*codigoReset),
		tokens:  make(map[string]*tokenReset),
	}
}

// GerarCodigo cria (ou substitui) o código de 6 dígitos de um email.
func (r *RecuperacaoStore) GerarCodigo(email string) (string, error) {
	email = strings.ToLower(email)
	var sb strings.Builder
	for i := 0; i < tamanhoDoCodigo; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("falha ao gerar código: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	codigo := sb.String()

	r.mu.Lock()
	r.codigos[email] = &codigoReset{Codigo: codigo, Expira: time.Now().Add(codigoTTL)}
	r.mu.Unlock()
	return codigo, nil
}

// VerificarCodigo confere o código e, se bater, troca por um token de
// recuperação de uso único. Três erros seguidos invalidam o código (429).
func (r *RecuperacaoStore) VerificarCodigo(email, codigo string) (string, error) {
	email = strings.ToLower(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.codigos[email]
	if !ok || time.Now().After(reg.Expira) {
		delete(r.codigos, email)
		return "", fiber.NewError(fiber.StatusBadRequest, "Código expirado ou inexistente. Solicite um novo.")
	}

	if reg.Codigo != codigo {
		reg.Tentativas++
		if reg.Tentativas >= maxTentativas {
			delete(r.codigos, email)
			return "", fiber.NewError(fiber.StatusTooManyRequests, "Muitas tentativas. Solicite um novo código.")
		}
		return "", fiber.NewError(fiber.StatusBadRequest, "Código incorreto")
	}

	delete(r.codigos, email)
	token := uuid.NewString()
	r.tokens[token] = &tokenReset{Email: email, Expira: time.Now().Add(tokenTTL)}
	return token, nil
}

// ConsumirToken valida e queima o token de recuperação, devolvendo o email.
func (r *RecuperacaoStore) ConsumirToken(token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.tokens[token]
	if !ok || time.Now().After(reg.Expira) {
		delete(r.tokens, token)
		return "", fiber.NewError(fiber.StatusBadRequest, "Token de recuperação inválido ou expirado")
	}
	delete(r.tokens, token)
	return reg.Email, nil
}

// StartLimpezaExpirados varre o store periodicamente e descarta códigos e
// tokens vencidos, para o mapa não crescer sem limite.
func (r *RecuperacaoStore) StartLimpezaExpirados(intervalo time.Duration) {
	go func() {
		for {
			time.Sleep(intervalo)
			agora := time.Now()
			removidos := 0

			r.mu.Lock()
			for email, reg := range r.codigos {
				if agora.After(reg.Expira) {
					delete(r.codigos, email)
					removidos++
				}
			}
			for tok, reg := range r.tokens {
				if agora.After(reg.Expira) {
					delete(r.tokens, tok)
					removidos++
				}
			}
			r.mu.Unlock()

			if removidos > 0 {
				log.Printf("[CLEANUP] %d registro(s) de recuperação expirados removidos", removidos)
			}
		}
	}()
}
