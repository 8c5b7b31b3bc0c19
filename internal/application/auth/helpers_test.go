package auth_test

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
)

// directorySpy directorio en memoria que cuenta las consultas.
type directorySpy struct {
	mu     sync.Mutex
	emails []string
	calls  int
	err    error
}

func newDirectory(emails ...string) *directorySpy {
	return &directorySpy{emails: emails}
}

func (d *directorySpy) ExistsByEmail(_ context.Context, email string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.err != nil {
		return false, d.err
	}
	for _, e := range d.emails {
		if strings.EqualFold(e, email) {
			return true, nil
		}
	}
	return false, nil
}

func (d *directorySpy) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type toast struct {
	Message  string
	Severity auth.Severity
}

// callbacksSpy registra cada invocación de los colaboradores externos.
type callbacksSpy struct {
	logins      []string
	registers   []auth.RegisterData
	toasts      []toast
	loginErr    error
	registerErr error
}

func (c *callbacksSpy) OnLogin(_ context.Context, email string) error {
	c.logins = append(c.logins, email)
	return c.loginErr
}

func (c *callbacksSpy) OnRegister(_ context.Context, data auth.RegisterData) error {
	c.registers = append(c.registers, data)
	return c.registerErr
}

func (c *callbacksSpy) ShowToast(message string, severity auth.Severity) {
	c.toasts = append(c.toasts, toast{Message: message, Severity: severity})
}

// gateLatency bloquea el envío hasta que se libera la puerta.
type gateLatency struct {
	entered chan struct{}
	release chan struct{}
}

func newGate() *gateLatency {
	return &gateLatency{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (g *gateLatency) Wait() {
	g.entered <- struct{}{}
	<-g.release
}

func fill(p *auth.Page, f auth.FormState) {
	p.SetField(auth.FieldName, f.Name)
	p.SetField(auth.FieldEmail, f.Email)
	p.SetField(auth.FieldPhone, f.Phone)
	p.SetField(auth.FieldPassword, f.Password)
	p.SetField(auth.FieldConfirmPassword, f.ConfirmPassword)
}
