package pgrepo

import (
	"fmt"
	"strings"
)

// rowScanner общий интерфейс pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// whereBuilder собирает WHERE с позиционными плейсхолдерами postgres.
type whereBuilder struct {
	conditions []string
	args       []any
}

// add добавляет условие. Все знаки ? в cond заменяются на плейсхолдер $N аргумента arg.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conditions = append(w.conditions, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

// addArg добавляет аргумент без условия и возвращает его плейсхолдер.
func (w *whereBuilder) addArg(arg any) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) String() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// escapeLike экранирует спецсимволы шаблона LIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
