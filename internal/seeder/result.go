package seeder

import (
	"time"

	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
)

// State — этап жизненного цикла запуска
type State string

const (
	StateNotStarted State = "NotStarted"
	StateConnected  State = "Connected"
	StateExecuted   State = "Executed"
	StateCommitted  State = "Committed"
	StateRolledBack State = "RolledBack"
	StateClosed     State = "Closed"
)

// Result — итог запуска. Err == nil означает, что скрипт применён и закоммичен.
type Result struct {
	File     string
	Bytes    int
	States   []State
	Closed   bool
	Duration time.Duration
	Err      error
}

// OK — скрипт применён целиком
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind — вид ошибки (ConfigurationMissing, FileNotFound, ...); пусто при успехе
func (r Result) Kind() string {
	return apperrors.Kind(r.Err)
}

// Final — последнее достигнутое состояние
func (r Result) Final() State {
	if len(r.States) == 0 {
		return StateNotStarted
	}
	return r.States[len(r.States)-1]
}

func (r *Result) enter(s State) {
	r.States = append(r.States, s)
}
