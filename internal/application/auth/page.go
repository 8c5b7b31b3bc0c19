package auth

import (
	"context"
	"sync"

	"github.com/jhoicas/zapshop-api/internal/domain"
)

// Page estado del formulario de acceso/registro de un visitante: modo, campos y flag de carga.
// Máquina de envío: Idle -> Submitting -> {LoginSucceeded, RegisterSucceeded, Rejected} -> Idle.
type Page struct {
	mu      sync.Mutex
	mode    Mode
	form    FormState
	loading bool

	customers EmailDirectory
	users     EmailDirectory
	latency   Latency
}

// NewPage construye el formulario en modo Login con los campos vacíos.
func NewPage(customers, users EmailDirectory, latency Latency) *Page {
	if latency == nil {
		latency = NoLatency
	}
	return &Page{
		mode:      ModeLogin,
		customers: customers,
		users:     users,
		latency:   latency,
	}
}

// Mode modo actual.
func (p *Page) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Form copia de los valores actuales.
func (p *Page) Form() FormState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// Loading true mientras hay un envío en curso.
func (p *Page) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// SetField sobrescribe un único campo. No valida nada: la validación ocurre en Submit.
func (p *Page) SetField(field Field, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.set(field, value)
}

// ToggleMode alterna Login/Register y borra password y confirmPassword.
func (p *Page) ToggleMode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode == ModeLogin {
		p.mode = ModeRegister
	} else {
		p.mode = ModeLogin
	}
	p.form.clearPasswords()
	return p.mode
}

// Submit evalúa el formulario y despacha el resultado a cb.
//
// El flag de carga se activa antes de la espera y sólo hay un envío en vuelo por Page;
// un segundo Submit concurrente devuelve domain.ErrSubmissionInFlight sin efectos.
// Los rechazos no son errores: se devuelven como Outcome Rejected tras pedir el toast.
// Los errores devueltos son fallos de directorio o de los callbacks; en ambos casos Page vuelve a Idle.
func (p *Page) Submit(ctx context.Context, cb Callbacks) (Outcome, error) {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return Outcome{}, domain.ErrSubmissionInFlight
	}
	p.loading = true
	mode, form := p.mode, p.form
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	}()

	p.latency.Wait()

	out, err := Evaluate(ctx, mode, form, p.customers, p.users)
	if err != nil {
		cb.ShowToast(MessageDirectoryUnavailable, SeverityError)
		return Outcome{}, err
	}

	switch out.Kind {
	case Rejected:
		if out.ForcedMode != nil {
			p.forceMode(*out.ForcedMode)
		}
		cb.ShowToast(out.Reason.Message(), SeverityError)
	case LoginSucceeded:
		if err := cb.OnLogin(ctx, out.Email); err != nil {
			return out, err
		}
	case RegisterSucceeded:
		if err := cb.OnRegister(ctx, *out.Registration); err != nil {
			return out, err
		}
	}
	return out, nil
}

// forceMode aplica el modo impuesto por un rechazo. Como cualquier cambio de modo,
// borra contraseña y confirmación a propósito; el email tecleado se conserva.
func (p *Page) forceMode(m Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != m {
		p.mode = m
		p.form.clearPasswords()
	}
}
