package uow

import (
	"github.com/jackc/pgx/v5"
)

// Transaction выдает репозитории, привязанные к открытой pgx транзакции. Репозиторий создается фабрикой
// при первом запросе и переиспользуется до конца транзакции.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	created   map[RepositoryName]Repository
	tx        pgx.Tx
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		created:   make(map[RepositoryName]Repository, len(factories)),
		tx:        tx,
	}
}

// Get возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.created[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, repoErr(ErrRepositoryNotRegistered, name)
	}
	repo := factory(t.tx)
	t.created[name] = repo
	return repo, nil
}

// GetAs то же что Get, но приводит репозиторий к типу T. Если тип не подходит - ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	return castRepo[T](repo, name)
}

func castRepo[T any](repo Repository, name RepositoryName) (T, error) {
	res, ok := repo.(T)
	if !ok {
		return res, repoErr(ErrInvalidRepositoryType, name)
	}
	return res, nil
}
