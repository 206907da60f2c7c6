package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

// SMTPSettings параметры почтового сервера
type SMTPSettings struct {
	Host string
	Port string
	User string
	Pass string
}

// Enabled true если SMTP настроен
func (s SMTPSettings) Enabled() bool {
	return s.Host != "" && s.User != ""
}

func SendEmail(to, subject, body string, smtp SMTPSettings) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtp.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	port, err := strconv.Atoi(smtp.Port)
	if err != nil || port == 0 {
		port = 587
	}
	d := gomail.NewDialer(smtp.Host, port, smtp.User, smtp.Pass)
	return d.DialAndSend(m)
}
