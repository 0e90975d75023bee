package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS users`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMigrate_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	boom := errors.New("boom")
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS users`)).WillReturnError(boom)

	if err := Migrate(context.Background(), db); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestNewDB_InvalidDSN(t *testing.T) {
	if _, err := NewDB(context.Background(), "not a dsn"); err == nil {
		t.Fatal("expected error for invalid dsn")
	}
}
