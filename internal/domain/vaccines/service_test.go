package vaccines

import (
	"context"
	"errors"
	"testing"

	"pet-health-record/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID       map[int64]Vaccine
	nextID     int64
	lastFilter ListFilter
}

func (r *testRepo) Create(ctx context.Context, v Vaccine) (Vaccine, error) {
	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Vaccine, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccine{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Vaccine, error) {
	r.lastFilter = filter
	out := make([]Vaccine, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, v Vaccine) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[int64]Vaccine{}}
	return NewService(repo), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.Create(context.Background(), Input{
		Name:            strPtr(" Rabies "),
		Manufacturer:    strPtr("Zoetis"),
		PeriodicityDays: intPtr(365),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rabies", v.Name)
	assert.Equal(t, 365, v.PeriodicityDays)
	assert.False(t, v.CreatedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), Input{PeriodicityDays: intPtr(0)})
	var fe apperr.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"This field is required."}, fe["name"])
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 1."}, fe["periodicity_days"])

	_, err = svc.Create(context.Background(), Input{Name: strPtr("  ")})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"This field may not be blank."}, fe["name"])
	assert.Equal(t, []string{"This field is required."}, fe["periodicity_days"])

	_, err = svc.Create(context.Background(), Input{Name: strPtr("Big"), PeriodicityDays: intPtr(3000000000)})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"Ensure this value is less than or equal to 2147483647."}, fe["periodicity_days"])

	v, err := svc.Create(context.Background(), Input{Name: strPtr("Max"), PeriodicityDays: intPtr(2147483647)})
	require.NoError(t, err)
	assert.Equal(t, 2147483647, v.PeriodicityDays)
	delete(repo.byID, v.ID)

	assert.Empty(t, repo.byID)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v, err := svc.Create(ctx, Input{Name: strPtr("Rabies"), Manufacturer: strPtr("Zoetis"), PeriodicityDays: intPtr(365)})
	require.NoError(t, err)

	v, err = svc.Update(ctx, v.ID, Input{PeriodicityDays: intPtr(730)}, true)
	require.NoError(t, err)
	assert.Equal(t, "Zoetis", v.Manufacturer)
	assert.Equal(t, 730, v.PeriodicityDays)

	v, err = svc.Update(ctx, v.ID, Input{Name: strPtr("Rabies"), PeriodicityDays: intPtr(365)}, false)
	require.NoError(t, err)
	assert.Equal(t, "", v.Manufacturer)

	_, err = svc.Update(ctx, 99, Input{Name: strPtr("x")}, true)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestList_DefaultOrdering(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.List(context.Background(), ListFilter{Manufacturer: "Zoetis"})
	require.NoError(t, err)
	assert.Equal(t, DefaultOrdering, repo.lastFilter.Ordering)
	assert.Equal(t, "Zoetis", repo.lastFilter.Manufacturer)
}

func TestExists(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v, err := svc.Create(ctx, Input{Name: strPtr("Rabies"), PeriodicityDays: intPtr(365)})
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Delete(ctx, v.ID))
	assert.True(t, errors.Is(svc.Delete(ctx, v.ID), apperr.ErrNotFound))
}
