// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

package machine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demirhancelik/corporate-api/internal/machine"
	"github.com/demirhancelik/corporate-api/internal/platform/dberr"
)

// fakeRepository is an in-memory machine store.
type fakeRepository struct {
	machines map[string]*machine.Machine
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{machines: map[string]*machine.Machine{}}
}

func (repo *fakeRepository) ListMachines(_ context.Context) ([]*machine.Machine, error) {
	result := make([]*machine.Machine, 0, len(repo.machines))
	for _, entry := range repo.machines {
		result = append(result, entry)
	}
	return result, nil
}

func (repo *fakeRepository) GetMachineByID(_ context.Context, id string) (*machine.Machine, error) {
	entry, ok := repo.machines[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *entry
	return &copied, nil
}

func (repo *fakeRepository) Create(_ context.Context, entry *machine.Machine) error {
	repo.machines[entry.ID] = entry
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entry *machine.Machine) error {
	if _, ok := repo.machines[entry.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.machines[entry.ID] = entry
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.machines[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.machines, id)
	return nil
}

func newService(repo machine.Repository) *machine.Service {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return machine.NewService(repo, logger)
}

func validInput() machine.SaveInput {
	return machine.SaveInput{
		Quantity: 2,
		Model:    "ZX 350",
		Brand:    "Hitachi",
		Capacity: "35 t",
	}
}

/*
TestCreateMachine_OriginFlags verifies that the domestic/imported flags
stay mutually exclusive on create: when a payload asserts both, imported
wins.
*/
func TestCreateMachine_OriginFlags(t *testing.T) {
	testCases := []struct {
		name             string
		domestic         bool
		imported         bool
		expectedDomestic bool
		expectedImported bool
	}{
		{"domestic only", true, false, true, false},
		{"imported only", false, true, false, true},
		{"neither", false, false, false, false},
		{"both asserted", true, true, false, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := newService(newFakeRepository())

			input := validInput()
			input.IsDomestic = testCase.domestic
			input.IsImported = testCase.imported

			created, err := service.CreateMachine(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedDomestic, created.IsDomestic)
			assert.Equal(t, testCase.expectedImported, created.IsImported)
		})
	}
}

/*
TestUpdateMachine_FreshFlagWins verifies that when an update asserts both
flags, the one the admin just toggled (the one not set before) wins and
the stale flag is cleared.
*/
func TestUpdateMachine_FreshFlagWins(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := validInput()
	input.IsDomestic = true
	created, err := service.CreateMachine(context.Background(), input)
	require.NoError(t, err)
	require.True(t, created.IsDomestic)

	// The form still carries yerli=true when the admin ticks ithal.
	input.IsImported = true
	updated, err := service.UpdateMachine(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.False(t, updated.IsDomestic)
	assert.True(t, updated.IsImported)

	// And the reverse: ticking yerli on an imported machine clears ithal.
	input = validInput()
	input.IsDomestic = true
	input.IsImported = true
	updated, err = service.UpdateMachine(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.True(t, updated.IsDomestic)
	assert.False(t, updated.IsImported)
}

/*
TestUpdateMachine_UnchangedRoundTrip verifies the edit round trip: fetching
a machine and saving it back untouched changes no persisted field, the
creation time included.
*/
func TestUpdateMachine_UnchangedRoundTrip(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo)

	input := validInput()
	input.Description = "Paletli ekskavatör"
	input.IsImported = true
	created, err := service.CreateMachine(context.Background(), input)
	require.NoError(t, err)

	repo.machines[created.ID].CreatedAt = time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)

	fetched, err := repo.GetMachineByID(context.Background(), created.ID)
	require.NoError(t, err)

	// Resubmit the fetched state verbatim, as the edit form does when the
	// admin saves without touching anything.
	resubmitted := machine.SaveInput{
		Quantity:    fetched.Quantity,
		Description: fetched.Description,
		Model:       fetched.Model,
		Brand:       fetched.Brand,
		IsDomestic:  fetched.IsDomestic,
		IsImported:  fetched.IsImported,
		Capacity:    fetched.Capacity,
	}
	_, err = service.UpdateMachine(context.Background(), created.ID, resubmitted)
	require.NoError(t, err)

	stored, err := repo.GetMachineByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, fetched, stored)
}

/*
TestCreateMachine_Validation verifies the required fields and quantity floor.
*/
func TestCreateMachine_Validation(t *testing.T) {
	service := newService(newFakeRepository())

	input := validInput()
	input.Model = ""
	_, err := service.CreateMachine(context.Background(), input)
	assert.Error(t, err)

	input = validInput()
	input.Quantity = 0
	_, err = service.CreateMachine(context.Background(), input)
	assert.Error(t, err)
}

/*
TestUpdateMachine_NotFound verifies that updating a missing machine
surfaces not-found instead of inserting.
*/
func TestUpdateMachine_NotFound(t *testing.T) {
	service := newService(newFakeRepository())

	_, err := service.UpdateMachine(context.Background(), "missing-id", validInput())
	assert.Error(t, err)
}
