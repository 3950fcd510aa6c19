package docbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/order"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/page"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memStore keeps documents in memory and implements the overlap count the
// way docdb does it in SQL.
type memStore struct {
	docs map[uuid.UUID]docbus.Document
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[uuid.UUID]docbus.Document)}
}

func (s *memStore) NewWithTx(tx sqldb.CommitRollbacker) (docbus.Storer, error) {
	return s, nil
}

func (s *memStore) Create(_ context.Context, doc docbus.Document) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *memStore) Update(_ context.Context, doc docbus.Document) error {
	s.docs[doc.ID] = doc
	return nil
}

func (s *memStore) Delete(_ context.Context, doc docbus.Document) error {
	delete(s.docs, doc.ID)
	return nil
}

func (s *memStore) Query(_ context.Context, _ docbus.QueryFilter, _ order.By, _ page.Page) ([]docbus.Document, error) {
	return nil, nil
}

func (s *memStore) Count(_ context.Context, _ docbus.QueryFilter) (int, error) {
	return len(s.docs), nil
}

func (s *memStore) QueryByID(_ context.Context, documentID uuid.UUID) (docbus.Document, error) {
	doc, ok := s.docs[documentID]
	if !ok {
		return docbus.Document{}, docbus.ErrNotFound
	}
	return doc, nil
}

func (s *memStore) CountOverlapping(_ context.Context, doc docbus.Document) (int, error) {
	var n int
	for _, other := range s.docs {
		if other.ID == doc.ID || other.SchoolID != doc.SchoolID || other.Name != doc.Name {
			continue
		}
		if doc.EffectiveTo != nil && doc.EffectiveTo.Before(other.EffectiveFrom) {
			continue
		}
		if other.EffectiveTo != nil && other.EffectiveTo.Before(doc.EffectiveFrom) {
			continue
		}
		n++
	}
	return n, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func Test_Create_Conflict(t *testing.T) {
	log := logger.New(testWriter{t}, logger.LevelInfo, "TEST", nil)
	store := newMemStore()
	core := docbus.NewCore(log, store)
	ctx := context.Background()

	schoolID := uuid.New()

	base := docbus.NewDocument{
		SchoolID:      schoolID,
		Name:          "transcript",
		Price:         25,
		EffectiveFrom: date(2026, time.January, 1),
		EffectiveTo:   datePtr(2026, time.June, 30),
	}

	_, err := core.Create(ctx, base)
	require.NoError(t, err)

	t.Run("overlapping window same name", func(t *testing.T) {
		nd := base
		nd.EffectiveFrom = date(2026, time.June, 1)
		nd.EffectiveTo = datePtr(2026, time.December, 31)

		_, err := core.Create(ctx, nd)
		require.ErrorIs(t, err, docbus.ErrConflict)
	})

	t.Run("open ended window overlaps", func(t *testing.T) {
		nd := base
		nd.EffectiveFrom = date(2026, time.March, 1)
		nd.EffectiveTo = nil

		_, err := core.Create(ctx, nd)
		require.ErrorIs(t, err, docbus.ErrConflict)
	})

	t.Run("adjacent window allowed", func(t *testing.T) {
		nd := base
		nd.EffectiveFrom = date(2026, time.July, 1)
		nd.EffectiveTo = datePtr(2026, time.December, 31)

		_, err := core.Create(ctx, nd)
		require.NoError(t, err)
	})

	t.Run("same window different name allowed", func(t *testing.T) {
		nd := base
		nd.Name = "report-card"

		_, err := core.Create(ctx, nd)
		require.NoError(t, err)
	})

	t.Run("same window different school allowed", func(t *testing.T) {
		nd := base
		nd.SchoolID = uuid.New()

		_, err := core.Create(ctx, nd)
		require.NoError(t, err)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		nd := base
		nd.EffectiveFrom = date(2027, time.January, 1)
		nd.EffectiveTo = datePtr(2026, time.January, 1)

		_, err := core.Create(ctx, nd)
		require.ErrorIs(t, err, docbus.ErrInvalidWindow)
	})
}

func Test_Update_Reprice(t *testing.T) {
	log := logger.New(testWriter{t}, logger.LevelInfo, "TEST", nil)
	store := newMemStore()
	core := docbus.NewCore(log, store)
	ctx := context.Background()

	schoolID := uuid.New()

	first, err := core.Create(ctx, docbus.NewDocument{
		SchoolID:      schoolID,
		Name:          "transcript",
		Price:         25,
		EffectiveFrom: date(2026, time.January, 1),
		EffectiveTo:   datePtr(2026, time.June, 30),
	})
	require.NoError(t, err)

	second, err := core.Create(ctx, docbus.NewDocument{
		SchoolID:      schoolID,
		Name:          "transcript",
		Price:         30,
		EffectiveFrom: date(2026, time.July, 1),
		EffectiveTo:   nil,
	})
	require.NoError(t, err)

	t.Run("price change inside own window", func(t *testing.T) {
		price := 35.0
		got, err := core.Update(ctx, second, docbus.UpdateDocument{Price: &price})
		require.NoError(t, err)
		require.Equal(t, 35.0, got.Price)
	})

	t.Run("moving window onto sibling conflicts", func(t *testing.T) {
		from := date(2026, time.June, 1)
		_, err := core.Update(ctx, second, docbus.UpdateDocument{EffectiveFrom: &from})
		require.ErrorIs(t, err, docbus.ErrConflict)
	})

	t.Run("own window never conflicts with itself", func(t *testing.T) {
		price := 27.0
		_, err := core.Update(ctx, first, docbus.UpdateDocument{Price: &price})
		require.NoError(t, err)
	})
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
