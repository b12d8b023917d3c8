package email

import "fmt"

// NewMatchEmail строит письмо-уведомление об образовавшейся паре.
// toEmail - адрес получателя, matchName - имя участника пары.
func NewMatchEmail(toEmail, matchName string) *Email {
	return &Email{
		To:      []string{toEmail},
		Subject: "You have a match!",
		Body:    fmt.Sprintf("%q liked you back! Participant email: %s", matchName, toEmail),
	}
}
