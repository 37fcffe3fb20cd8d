package usersync

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// sagaStep un paso de la saga: acción hacia adelante y su compensación.
// compensate en nil significa que el paso no tiene deshacer.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga ejecuta los pasos en orden. Ante el primer fallo posterior a un paso
// completado, deshace los pasos previos en orden inverso (mejor esfuerzo) y
// devuelve el error original envuelto como SecondaryWriteError. Un fallo en
// el primer paso no tiene nada que compensar y se clasifica como
// PrimaryWriteError. Los fallos de compensación se registran y nunca
// reemplazan al error que se propaga.
type saga struct {
	op    string
	steps []sagaStep
	log   *logger.Logger
}

func (s *saga) execute(ctx context.Context) error {
	var done []sagaStep
	for i, st := range s.steps {
		err := st.run(ctx)
		if err == nil {
			done = append(done, st)
			continue
		}
		if i == 0 {
			return &domain.PrimaryWriteError{Step: st.name, Err: err}
		}
		s.unwind(ctx, done, st.name)
		return &domain.SecondaryWriteError{Step: st.name, Err: err}
	}
	return nil
}

// unwind aplica las compensaciones de los pasos completados en orden inverso.
// No reintenta: un deshacer fallido queda registrado y la reparación corre
// por cuenta de la auditoría y la migración, fuera de banda.
func (s *saga) unwind(ctx context.Context, done []sagaStep, failedStep string) {
	for i := len(done) - 1; i >= 0; i-- {
		st := done[i]
		if st.compensate == nil {
			continue
		}
		if err := st.compensate(ctx); err != nil {
			s.log.Error().
				Str("operacion", s.op).
				Str("paso_fallido", failedStep).
				Str("paso_compensado", st.name).
				Err(err).
				Msg("compensación fallida; se propaga el error original")
			continue
		}
		s.log.Warn().
			Str("operacion", s.op).
			Str("paso_fallido", failedStep).
			Str("paso_compensado", st.name).
			Msg("compensación aplicada")
	}
}
