package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaefliger/grocery/pkg/repository"
)

func TestUoW_Do_Commit(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_Do_RollbackReturnsErrorUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_Do_RepositoriesShareTheTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "stores" WHERE name = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Migros"))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := uow.StoreRepository()
		if err != nil {
			return err
		}
		store, err := repo.GetByName(context.Background(), "Migros")
		if err != nil {
			return err
		}
		if store.Name != "Migros" {
			return errors.New("unexpected store")
		}
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_RepositoriesOutsideDoUseBaseSession(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectQuery(`SELECT (.+) FROM "stores" WHERE name = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Migros"))

	repo, err := uow.StoreRepository()
	require.NoError(t, err)
	store, err := repo.GetByName(context.Background(), "Migros")
	require.NoError(t, err)
	assert.Equal(t, "Migros", store.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
