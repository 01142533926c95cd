package core

import (
	"bytes"
	"context"
	"net/mail"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

var (
	templates   = make(map[string]*texttmpl.Template)
	templatesMu sync.RWMutex
)

type (
	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Bcc     []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string
		TemplateData interface{}
		TextContent  string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages in order and stops at the first failure.
		SendMessages(ctx context.Context, messages ...*EmailMessage) error
	}
)

// RegisterEmailTemplate parses and caches a text/plain email template under `name`.
func RegisterEmailTemplate(name, text string) error {
	tmpl, err := texttmpl.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return errors.Wrapf(err, "parsing email template %q", name)
	}
	templatesMu.Lock()
	templates[name] = tmpl
	templatesMu.Unlock()
	return nil
}

// MustRegisterEmailTemplate is like RegisterEmailTemplate but panics on error.
func MustRegisterEmailTemplate(name, text string) {
	if err := RegisterEmailTemplate(name, text); err != nil {
		panic(err)
	}
}

func (m *EmailMessage) Render() error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	} else if m.TemplateName == "" {
		return nil
	}

	templatesMu.RLock()
	tmpl, ok := templates[m.TemplateName]
	templatesMu.RUnlock()
	if !ok {
		return errors.Errorf("email template %q not registered", m.TemplateName)
	}

	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, m.TemplateData); err != nil {
		return errors.Wrapf(err, "rendering email template %q", m.TemplateName)
	}
	m.TextContent = buff.String()
	return nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.TextContent != "" }
