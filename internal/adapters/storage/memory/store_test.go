package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-health-record/internal/domain/pets"
	"pet-health-record/internal/domain/users"
	"pet-health-record/internal/domain/vaccinations"
	"pet-health-record/internal/domain/vaccines"
	"pet-health-record/internal/filtering"
	"pet-health-record/internal/platform/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *Store
	owner users.User
	rex   pets.Pet
	mia   pets.Pet
	rab   vaccines.Vaccine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	owner, err := s.Users().Create(ctx, users.User{Email: "owner1@example.com", IsActive: true})
	require.NoError(t, err)

	rex, err := s.Pets().Create(ctx, pets.Pet{OwnerID: owner.ID, Name: "Rex", Species: pets.SpeciesDog, Breed: "Labrador"})
	require.NoError(t, err)
	mia, err := s.Pets().Create(ctx, pets.Pet{OwnerID: owner.ID, Name: "Mia", Species: pets.SpeciesCat, Breed: "Siamese"})
	require.NoError(t, err)

	rab, err := s.Vaccines().Create(ctx, vaccines.Vaccine{Name: "Rabies", PeriodicityDays: 365})
	require.NoError(t, err)

	return fixture{store: s, owner: owner, rex: rex, mia: mia, rab: rab}
}

func TestUsers_DuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Users().Create(context.Background(), users.User{Email: "owner1@example.com"})
	assert.True(t, errors.Is(err, users.ErrEmailTaken))
}

func TestVaccinations_DefaultOrderingTieBreaksOnPetName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := f.store.Vaccinations()

	day := caldate.New(2024, time.January, 1)
	for _, petID := range []int64{f.rex.ID, f.mia.ID} {
		_, err := repo.Create(ctx, vaccinations.Vaccination{PetID: petID, VaccineID: f.rab.ID, ApplicationDate: day})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, vaccinations.Vaccination{PetID: f.rex.ID, VaccineID: f.rab.ID, ApplicationDate: day.AddDays(10)})
	require.NoError(t, err)

	got, err := repo.ListByOwner(ctx, f.owner.ID, vaccinations.ListFilter{Ordering: vaccinations.DefaultOrdering})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "2024-01-11", got[0].ApplicationDate.String())
	assert.Equal(t, f.mia.ID, got[1].PetID)
	assert.Equal(t, f.rex.ID, got[2].PetID)
}

func TestVaccinations_DueOnOrAfterExcludesNull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := f.store.Vaccinations()

	due := caldate.New(2025, time.January, 1)
	_, err := repo.Create(ctx, vaccinations.Vaccination{PetID: f.rex.ID, VaccineID: f.rab.ID, ApplicationDate: caldate.New(2024, 1, 1), NextDueDate: &due})
	require.NoError(t, err)
	_, err = repo.Create(ctx, vaccinations.Vaccination{PetID: f.mia.ID, VaccineID: f.rab.ID, ApplicationDate: caldate.New(2024, 1, 1)})
	require.NoError(t, err)

	cut := caldate.New(2025, time.January, 1)
	got, err := repo.ListByOwner(ctx, f.owner.ID, vaccinations.ListFilter{DueOnOrAfter: &cut})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.rex.ID, got[0].PetID)

	asc, err := repo.ListByOwner(ctx, f.owner.ID, vaccinations.ListFilter{
		Ordering: []filtering.OrderField{{Field: vaccinations.OrderNextDueDate}},
	})
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Nil(t, asc[1].NextDueDate, "nulls sort last ascending")
}

func TestCascadeDeletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.store.Vaccinations().Create(ctx, vaccinations.Vaccination{PetID: f.rex.ID, VaccineID: f.rab.ID, ApplicationDate: caldate.New(2024, 1, 1)})
	require.NoError(t, err)

	require.NoError(t, f.store.Vaccines().Delete(ctx, f.rab.ID))
	_, err = f.store.Vaccinations().GetByID(ctx, v.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	dis, err := f.store.Vaccines().Create(ctx, vaccines.Vaccine{Name: "Distemper", PeriodicityDays: 365})
	require.NoError(t, err)
	mv, err := f.store.Vaccinations().Create(ctx, vaccinations.Vaccination{PetID: f.mia.ID, VaccineID: dis.ID, ApplicationDate: caldate.New(2024, 2, 1)})
	require.NoError(t, err)

	require.NoError(t, f.store.Users().Delete(ctx, f.owner.ID))
	_, err = f.store.Vaccinations().GetByID(ctx, mv.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = f.store.Vaccines().GetByID(ctx, dis.ID)
	require.NoError(t, err)
	_, err = f.store.Pets().GetByID(ctx, f.rex.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = f.store.Pets().GetByID(ctx, f.mia.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPets_FilterSearchAndOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.store.Pets().ListByOwner(ctx, f.owner.ID, pets.ListFilter{Ordering: pets.DefaultOrdering})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mia", got[0].Name)

	got, err = f.store.Pets().ListByOwner(ctx, f.owner.ID, pets.ListFilter{Search: []string{"lab"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].Name)

	got, err = f.store.Pets().ListByOwner(ctx, f.owner.ID, pets.ListFilter{Species: pets.SpeciesCat})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = f.store.Pets().ListByOwner(ctx, f.owner.ID+1, pets.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRevocationStore(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	ok, err := s.Revocations().IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Revocations().Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
	ok, err = s.Revocations().IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
