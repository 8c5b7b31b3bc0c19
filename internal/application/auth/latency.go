package auth

import "time"

// Latency punto de suspensión del envío, donde iría una llamada de red real.
// No admite cancelación: una vez iniciado, siempre termina.
type Latency interface {
	Wait()
}

// DefaultSubmitDelay latencia artificial por defecto.
const DefaultSubmitDelay = 800 * time.Millisecond

// FixedLatency espera una duración fija. Cero o negativo no espera.
type FixedLatency struct {
	Delay time.Duration
}

// Wait bloquea durante Delay.
func (l FixedLatency) Wait() {
	if l.Delay <= 0 {
		return
	}
	t := time.NewTimer(l.Delay)
	defer t.Stop()
	<-t.C
}

// NoLatency no espera (tests y herramientas).
var NoLatency Latency = FixedLatency{}
