package userdb_test

import (
	"context"
	"errors"
	"net/mail"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus/stores/userdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}

func newTestStore(t *testing.T) (*userdb.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(testWriter{t}, logger.LevelInfo, "TEST", nil)

	return userdb.NewStore(log, sqlx.NewDb(db, "postgres")), mock
}

func testUser() userbus.User {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	return userbus.User{
		ID:           uuid.New(),
		Name:         name.MustParse("Ada Lovelace"),
		Email:        mail.Address{Address: "ada@example.com"},
		Role:         role.User,
		PasswordHash: []byte("hash"),
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func Test_Create(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Create(context.Background(), testUser())
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_Create_DuplicateEmail(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

	err := store.Create(context.Background(), testUser())
	require.ErrorIs(t, err, userbus.ErrUniqueEmail)
}

func Test_Create_DuplicatePhone(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_phone"})

	err := store.Create(context.Background(), testUser())
	require.ErrorIs(t, err, userbus.ErrUniquePhone)
}

func Test_QueryByID(t *testing.T) {
	store, mock := newTestStore(t)

	usr := testUser()

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "phone", "enabled", "created_at", "updated_at"}).
		AddRow(usr.ID.String(), usr.Name.String(), usr.Email.Address, usr.PasswordHash, usr.Role.String(), nil, usr.Enabled, usr.CreatedAt, usr.UpdatedAt)

	mock.ExpectQuery("SELECT(.|\\n)*FROM(.|\\n)*users").
		WillReturnRows(rows)

	got, err := store.QueryByID(context.Background(), usr.ID)
	require.NoError(t, err)
	require.Equal(t, usr.ID, got.ID)
	require.Equal(t, usr.Email.Address, got.Email.Address)
	require.True(t, got.Role.Equal(usr.Role))
}

func Test_QueryByID_NotFound(t *testing.T) {
	store, mock := newTestStore(t)

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "phone", "enabled", "created_at", "updated_at"})

	mock.ExpectQuery("SELECT(.|\\n)*FROM(.|\\n)*users").
		WillReturnRows(rows)

	_, err := store.QueryByID(context.Background(), uuid.New())
	require.Error(t, err)
	require.True(t, errors.Is(err, userbus.ErrNotFound))
}

func Test_Query_Paging(t *testing.T) {
	store, mock := newTestStore(t)

	usr1 := testUser()
	usr2 := testUser()

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "phone", "enabled", "created_at", "updated_at"}).
		AddRow(usr1.ID.String(), usr1.Name.String(), usr1.Email.Address, usr1.PasswordHash, usr1.Role.String(), nil, usr1.Enabled, usr1.CreatedAt, usr1.UpdatedAt).
		AddRow(usr2.ID.String(), usr2.Name.String(), usr2.Email.Address, usr2.PasswordHash, usr2.Role.String(), nil, usr2.Enabled, usr2.CreatedAt, usr2.UpdatedAt)

	mock.ExpectQuery("SELECT(.|\\n)*FROM(.|\\n)*users(.|\\n)*OFFSET").
		WillReturnRows(rows)

	got, err := store.Query(context.Background(), userbus.QueryFilter{}, userbus.DefaultOrderBy, page.Parse("1", "2"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_Query_FilterByName(t *testing.T) {
	store, mock := newTestStore(t)

	usr := testUser()

	rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "phone", "enabled", "created_at", "updated_at"}).
		AddRow(usr.ID.String(), usr.Name.String(), usr.Email.Address, usr.PasswordHash, usr.Role.String(), nil, usr.Enabled, usr.CreatedAt, usr.UpdatedAt)

	mock.ExpectQuery("SELECT(.|\\n)*WHERE(.|\\n)*name").
		WillReturnRows(rows)

	nme := usr.Name
	filter := userbus.QueryFilter{Name: &nme}

	got, err := store.Query(context.Background(), filter, order.NewBy("name", order.ASC), page.Parse("", ""))
	require.NoError(t, err)
	require.Len(t, got, 1)
}
