package schooldb

import (
	"fmt"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/memberstatus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/name"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/types/schoolrole"
	"github.com/google/uuid"
)

type schoolDB struct {
	ID        uuid.UUID `db:"school_id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDBSchool(sch schoolbus.School) schoolDB {
	return schoolDB{
		ID:        sch.ID,
		Name:      sch.Name.String(),
		Slug:      sch.Slug,
		Enabled:   sch.Enabled,
		CreatedAt: sch.CreatedAt.UTC(),
		UpdatedAt: sch.UpdatedAt.UTC(),
	}
}

func toBusSchool(dbSch schoolDB) (schoolbus.School, error) {
	nme, err := name.Parse(dbSch.Name)
	if err != nil {
		return schoolbus.School{}, fmt.Errorf("parse name: %w", err)
	}

	sch := schoolbus.School{
		ID:        dbSch.ID,
		Name:      nme,
		Slug:      dbSch.Slug,
		Enabled:   dbSch.Enabled,
		CreatedAt: dbSch.CreatedAt.In(time.Local),
		UpdatedAt: dbSch.UpdatedAt.In(time.Local),
	}

	return sch, nil
}

func toBusSchools(dbSchs []schoolDB) ([]schoolbus.School, error) {
	schs := make([]schoolbus.School, len(dbSchs))

	for i, dbSch := range dbSchs {
		sch, err := toBusSchool(dbSch)
		if err != nil {
			return nil, err
		}
		schs[i] = sch
	}

	return schs, nil
}

type membershipDB struct {
	UserID    uuid.UUID `db:"user_id"`
	SchoolID  uuid.UUID `db:"school_id"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toDBMembership(m schoolbus.Membership) membershipDB {
	return membershipDB{
		UserID:    m.UserID,
		SchoolID:  m.SchoolID,
		Role:      m.Role.String(),
		Status:    m.Status.String(),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toBusMembership(dbM membershipDB) (schoolbus.Membership, error) {
	rle, err := schoolrole.Parse(dbM.Role)
	if err != nil {
		return schoolbus.Membership{}, fmt.Errorf("parse role: %w", err)
	}

	sts, err := memberstatus.Parse(dbM.Status)
	if err != nil {
		return schoolbus.Membership{}, fmt.Errorf("parse status: %w", err)
	}

	m := schoolbus.Membership{
		UserID:    dbM.UserID,
		SchoolID:  dbM.SchoolID,
		Role:      rle,
		Status:    sts,
		CreatedAt: dbM.CreatedAt.In(time.Local),
		UpdatedAt: dbM.UpdatedAt.In(time.Local),
	}

	return m, nil
}

func toBusMemberships(dbMs []membershipDB) ([]schoolbus.Membership, error) {
	ms := make([]schoolbus.Membership, len(dbMs))

	for i, dbM := range dbMs {
		m, err := toBusMembership(dbM)
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}

	return ms, nil
}
