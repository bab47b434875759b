// Package alert sends a best-effort email notification when a run ends in
// a fatal runtime error.
package alert

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP destination for fatal-error notifications. All
// three fields must be non-empty for Notify to do anything.
type Config struct {
	Host string
	Port int
	From string
	To   string
}

// Enabled reports whether enough configuration is present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.From != "" && c.To != ""
}

// Notify sends a best-effort crash report. Any failure to send is returned
// to the caller to log, but must never change the process's exit code --
// the exit code taxonomy is owned entirely by the guest program's outcome.
func Notify(c Config, fingerprint, errName, message string) error {
	if !c.Enabled() {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", c.From)
	m.SetHeader("To", c.To)
	m.SetHeader("Subject", fmt.Sprintf("IPPcode23 run failed: %s", errName))
	m.SetBody("text/plain", fmt.Sprintf(
		"program fingerprint: %s\nerror: %s\nmessage: %s\n", fingerprint, errName, message))

	port := c.Port
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(c.Host, port, "", "")
	return d.DialAndSend(m)
}
