package service

import (
	"fmt"
	"log"
	"net/smtp"

	"agendai_backend/internals/configs"
)

// EnviarEmail envia texto simples via SMTP. Falha de envio é logada e
// devolvida; quem chama decide se engole (boas-vindas) ou não (nunca
// abortamos uma resposta por causa do email).
func EnviarEmail(destino, assunto, corpo string) error {
	if configs.SMTPHost == "" || configs.SMTPUser == "" {
		log.Printf("[WARN] SMTP não configurado; email para %s descartado", destino)
		return nil
	}

	msg := []byte("From: " + configs.SMTPUser + "\r\n" +
		"To: " + destino + "\r\n" +
		"Subject: " + assunto + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" + corpo + "\r\n")

	addr := fmt.Sprintf("%s:%s", configs.SMTPHost, configs.SMTPPort)
	auth := smtp.PlainAuth("", configs.SMTPUser, configs.SMTPPassword, configs.SMTPHost)
	if err := smtp.SendMail(addr, auth, configs.SMTPUser, []string{destino}, msg); err != nil {
		log.Printf("[ERROR] Falha ao enviar email para %s: %v", destino, err)
		return err
	}
	return nil
}

func EnviarCodigoRecuperacao(destino, codigo string) {
	corpo := "Recebemos um pedido de redefinição de senha.\n\n" +
		"Seu código de verificação: " + codigo + "\n\n" +
		"O código expira em 15 minutos. Se você não pediu, ignore este email."
	_ = EnviarEmail(destino, "Agendai - Código de recuperação de senha", corpo)
}

func EnviarBoasVindas(destino, nome string) {
	corpo := "Olá, " + nome + "!\n\n" +
		"Seu cadastro no Agendai foi concluído. Bons estudos!"
	_ = EnviarEmail(destino, "Bem-vindo ao Agendai", corpo)
}
