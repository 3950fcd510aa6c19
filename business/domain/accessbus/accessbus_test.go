package accessbus_test

import (
	"context"
	"testing"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/role"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[uuid.UUID]userbus.User
}

func (s *stubUsers) QueryByID(_ context.Context, userID uuid.UUID) (userbus.User, error) {
	usr, ok := s.users[userID]
	if !ok {
		return userbus.User{}, userbus.ErrNotFound
	}
	return usr, nil
}

type stubMembers struct {
	memberships map[string]schoolbus.Membership
	calls       int
}

func key(userID uuid.UUID, schoolID uuid.UUID) string {
	return userID.String() + "/" + schoolID.String()
}

func (s *stubMembers) QueryMembership(_ context.Context, userID uuid.UUID, schoolID uuid.UUID) (schoolbus.Membership, error) {
	s.calls++
	m, ok := s.memberships[key(userID, schoolID)]
	if !ok {
		return schoolbus.Membership{}, schoolbus.ErrMembershipNotFound
	}
	return m, nil
}

func Test_Authorize(t *testing.T) {
	schoolID := uuid.New()
	otherSchoolID := uuid.New()

	superAdmin := userbus.User{ID: uuid.New(), Role: role.SuperAdmin, Enabled: true}
	sysAdmin := userbus.User{ID: uuid.New(), Role: role.SystemAdmin, Enabled: true}
	teacher := userbus.User{ID: uuid.New(), Role: role.User, Enabled: true}
	student := userbus.User{ID: uuid.New(), Role: role.User, Enabled: true}
	suspended := userbus.User{ID: uuid.New(), Role: role.User, Enabled: true}
	outsider := userbus.User{ID: uuid.New(), Role: role.User, Enabled: true}
	disabled := userbus.User{ID: uuid.New(), Role: role.User}
	unknownID := uuid.New()

	users := &stubUsers{users: map[uuid.UUID]userbus.User{
		superAdmin.ID: superAdmin,
		sysAdmin.ID:   sysAdmin,
		teacher.ID:    teacher,
		student.ID:    student,
		suspended.ID:  suspended,
		outsider.ID:   outsider,
		disabled.ID:   disabled,
	}}

	members := &stubMembers{memberships: map[string]schoolbus.Membership{
		key(teacher.ID, schoolID): {
			UserID:   teacher.ID,
			SchoolID: schoolID,
			Role:     schoolrole.Teacher,
			Status:   memberstatus.Active,
		},
		key(student.ID, schoolID): {
			UserID:   student.ID,
			SchoolID: schoolID,
			Role:     schoolrole.Student,
			Status:   memberstatus.Active,
		},
		key(suspended.ID, schoolID): {
			UserID:   suspended.ID,
			SchoolID: schoolID,
			Role:     schoolrole.Teacher,
			Status:   memberstatus.Inactive,
		},
		key(disabled.ID, schoolID): {
			UserID:   disabled.ID,
			SchoolID: schoolID,
			Role:     schoolrole.Teacher,
			Status:   memberstatus.Active,
		},
	}}

	core := accessbus.NewCore(users, members)
	ctx := context.Background()

	table := []struct {
		name     string
		userID   uuid.UUID
		schoolID uuid.UUID
		allowed  []schoolrole.Role
		wantErr  error
	}{
		{
			name:     "super admin without membership",
			userID:   superAdmin.ID,
			schoolID: schoolID,
			allowed:  []schoolrole.Role{schoolrole.Admin},
			wantErr:  nil,
		},
		{
			name:     "system admin any school",
			userID:   sysAdmin.ID,
			schoolID: otherSchoolID,
			wantErr:  nil,
		},
		{
			name:     "active member no role restriction",
			userID:   student.ID,
			schoolID: schoolID,
			wantErr:  nil,
		},
		{
			name:     "active member with matching role",
			userID:   teacher.ID,
			schoolID: schoolID,
			allowed:  []schoolrole.Role{schoolrole.Admin, schoolrole.Teacher},
			wantErr:  nil,
		},
		{
			name:     "active member with wrong role",
			userID:   student.ID,
			schoolID: schoolID,
			allowed:  []schoolrole.Role{schoolrole.Admin, schoolrole.Teacher},
			wantErr:  accessbus.ErrForbidden,
		},
		{
			name:     "inactive membership",
			userID:   suspended.ID,
			schoolID: schoolID,
			wantErr:  accessbus.ErrForbidden,
		},
		{
			name:     "no membership",
			userID:   outsider.ID,
			schoolID: schoolID,
			wantErr:  accessbus.ErrForbidden,
		},
		{
			name:     "member of another school only",
			userID:   teacher.ID,
			schoolID: otherSchoolID,
			wantErr:  accessbus.ErrForbidden,
		},
		{
			name:     "disabled account with active membership",
			userID:   disabled.ID,
			schoolID: schoolID,
			wantErr:  accessbus.ErrForbidden,
		},
		{
			name:     "unknown user",
			userID:   unknownID,
			schoolID: schoolID,
			wantErr:  accessbus.ErrNotFound,
		},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Authorize(ctx, tt.userID, tt.schoolID, tt.allowed...)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_Authorize_UnknownUserSkipsMembership(t *testing.T) {
	users := &stubUsers{users: map[uuid.UUID]userbus.User{}}
	members := &stubMembers{memberships: map[string]schoolbus.Membership{}}

	core := accessbus.NewCore(users, members)

	err := core.Authorize(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, accessbus.ErrNotFound)

	assert.Equal(t, 0, members.calls, "membership store must not be consulted for unknown users")
}

func Test_Authorize_PrivilegedSkipsMembership(t *testing.T) {
	admin := userbus.User{ID: uuid.New(), Role: role.SuperAdmin, Enabled: true}

	users := &stubUsers{users: map[uuid.UUID]userbus.User{admin.ID: admin}}
	members := &stubMembers{memberships: map[string]schoolbus.Membership{}}

	core := accessbus.NewCore(users, members)

	err := core.Authorize(context.Background(), admin.ID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, members.calls, "privileged roles bypass the membership lookup")
}

func Test_Authorize_ReadsFreshState(t *testing.T) {
	usr := userbus.User{ID: uuid.New(), Role: role.User, Enabled: true}
	schoolID := uuid.New()

	users := &stubUsers{users: map[uuid.UUID]userbus.User{usr.ID: usr}}
	members := &stubMembers{memberships: map[string]schoolbus.Membership{
		key(usr.ID, schoolID): {
			UserID:   usr.ID,
			SchoolID: schoolID,
			Role:     schoolrole.Student,
			Status:   memberstatus.Active,
		},
	}}

	core := accessbus.NewCore(users, members)
	ctx := context.Background()

	require.NoError(t, core.Authorize(ctx, usr.ID, schoolID))
	require.NoError(t, core.Authorize(ctx, usr.ID, schoolID))
	assert.Equal(t, 2, members.calls, "every call must hit the membership store")

	// Deactivating the membership must take effect on the next call.
	m := members.memberships[key(usr.ID, schoolID)]
	m.Status = memberstatus.Inactive
	members.memberships[key(usr.ID, schoolID)] = m

	require.ErrorIs(t, core.Authorize(ctx, usr.ID, schoolID), accessbus.ErrForbidden)
}
