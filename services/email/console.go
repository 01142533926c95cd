package emailsvc

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/progress/core"
)

// ConsoleService writes emails to an io.Writer instead of sending them.
type ConsoleService struct {
	out           io.Writer
	disableOutput bool

	mu   sync.Mutex
	sent []core.EmailMessage
}

var _ core.EmailService = (*ConsoleService)(nil)

func NewConsoleService(out io.Writer) *ConsoleService {
	return &ConsoleService{out: out}
}

func (svc *ConsoleService) SendMessages(ctx context.Context, messages ...*core.EmailMessage) error {
	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := svc.sendMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

func (svc *ConsoleService) sendMessage(msg *core.EmailMessage) error {
	if err := msg.Render(); err != nil {
		return errors.Wrap(err, "rendering email")
	}
	if !msg.HasRecipients() || !msg.HasContent() {
		return nil
	}
	if !svc.disableOutput {
		if err := svc.send(*msg); err != nil {
			return err
		}
	}
	svc.mu.Lock()
	svc.sent = append(svc.sent, *msg)
	svc.mu.Unlock()
	return nil
}

func (svc *ConsoleService) send(msg core.EmailMessage) error {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "To: %s\n", joinAddresses(msg.To))
	if len(msg.Cc) > 0 {
		_, _ = fmt.Fprintf(body, "Cc: %s\n", joinAddresses(msg.Cc))
	}
	_, _ = fmt.Fprintf(body, "Re: %s\n", msg.Subject)
	_, _ = fmt.Fprintf(body, "%s\n", strings.TrimRight(msg.TextContent, "\n"))

	if _, err := io.WriteString(svc.out, body.String()); err != nil {
		return errors.Wrap(err, "writing email")
	}
	return nil
}

// Sent returns the messages delivered so far.
func (svc *ConsoleService) Sent() []core.EmailMessage {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sent := make([]core.EmailMessage, len(svc.sent))
	copy(sent, svc.sent)
	return sent
}

// joinAddresses lists bare addresses (no display names).
func joinAddresses(addrs []mail.Address) string {
	toJoin := make([]string, 0, len(addrs))
	for _, a := range addrs {
		toJoin = append(toJoin, a.Address)
	}
	return strings.Join(toJoin, ", ")
}

// NewConsoleServiceMock returns a ConsoleService that only records messages.
func NewConsoleServiceMock() *ConsoleService {
	return &ConsoleService{out: io.Discard, disableOutput: true}
}
