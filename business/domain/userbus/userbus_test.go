package userbus_test

import (
	"context"
	"net/mail"
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/password"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	users map[uuid.UUID]userbus.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[uuid.UUID]userbus.User)}
}

func (s *memoryStore) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	return s, nil
}

func (s *memoryStore) Create(_ context.Context, usr userbus.User) error {
	s.users[usr.ID] = usr
	return nil
}

func (s *memoryStore) Update(_ context.Context, usr userbus.User) error {
	s.users[usr.ID] = usr
	return nil
}

func (s *memoryStore) Delete(_ context.Context, usr userbus.User) error {
	delete(s.users, usr.ID)
	return nil
}

func (s *memoryStore) Query(_ context.Context, _ userbus.QueryFilter, _ order.By, _ page.Page) ([]userbus.User, error) {
	var out []userbus.User
	for _, usr := range s.users {
		out = append(out, usr)
	}
	return out, nil
}

func (s *memoryStore) Count(_ context.Context, _ userbus.QueryFilter) (int, error) {
	return len(s.users), nil
}

func (s *memoryStore) QueryByID(_ context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, ok := s.users[userID]
	if !ok {
		return userbus.User{}, userbus.ErrNotFound
	}
	return usr, nil
}

func (s *memoryStore) QueryByEmail(_ context.Context, email mail.Address) (userbus.User, error) {
	for _, usr := range s.users {
		if usr.Email.Address == email.Address {
			return usr, nil
		}
	}
	return userbus.User{}, userbus.ErrNotFound
}

func seedUser(t *testing.T, bus *userbus.Core, email string, pass string) userbus.User {
	t.Helper()

	usr, err := bus.Create(context.Background(), userbus.NewUser{
		Name:     name.MustParse("Jane Smith"),
		Email:    mail.Address{Address: email},
		Role:     role.User,
		Password: password.MustParse(pass),
	})
	require.NoError(t, err)

	return usr
}

func Test_Authenticate(t *testing.T) {
	ctx := context.Background()
	bus := userbus.NewCore(newMemoryStore())

	usr := seedUser(t, bus, "jane@school.test", "s3cret-pass")

	got, err := bus.Authenticate(ctx, usr.Email, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)
}

func Test_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	bus := userbus.NewCore(newMemoryStore())

	usr := seedUser(t, bus, "jane@school.test", "s3cret-pass")

	_, err := bus.Authenticate(ctx, usr.Email, "not-the-pass")
	assert.ErrorIs(t, err, userbus.ErrAuthenticationFailure)
}

func Test_Authenticate_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	bus := userbus.NewCore(newMemoryStore())

	_, err := bus.Authenticate(ctx, mail.Address{Address: "nobody@school.test"}, "whatever")
	assert.ErrorIs(t, err, userbus.ErrNotFound)
}

func Test_Authenticate_Disabled(t *testing.T) {
	ctx := context.Background()
	bus := userbus.NewCore(newMemoryStore())

	usr := seedUser(t, bus, "jane@school.test", "s3cret-pass")

	disabled := false
	_, err := bus.Update(ctx, usr, userbus.UpdateUser{Enabled: &disabled})
	require.NoError(t, err)

	_, err = bus.Authenticate(ctx, usr.Email, "s3cret-pass")
	assert.ErrorIs(t, err, userbus.ErrUserDisabled)
}
