package services_test

import (
	"testing"
	"time"

	"github.com/JavaChrist/in-shape/models"
	"github.com/JavaChrist/in-shape/services"
	"github.com/JavaChrist/in-shape/utils"

	"github.com/stretchr/testify/require"
)

func TestWeightService_AppendPinsProfile(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-append@test.local")
	svc := services.NewWeightService(db)

	_, err := svc.Append(student.ID, 90, "start", time.Time{})
	require.NoError(t, err)
	_, err = svc.Append(student.ID, 88, "", time.Time{})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 88.0, user.WeightKg)
	// 88 kg at 175 cm
	require.Equal(t, 28.7, utils.Round1(user.BMI))
}

func TestWeightService_RemoveLatestFallsBack(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-remove@test.local")
	svc := services.NewWeightService(db)

	_, err := svc.Append(student.ID, 90, "", time.Time{})
	require.NoError(t, err)
	latest, err := svc.Append(student.ID, 88, "", time.Time{})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(student.ID, latest.ID))

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 90.0, user.WeightKg)
}

func TestWeightService_RemoveAllButFirstRevertsToFirst(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-revert@test.local")
	svc := services.NewWeightService(db)

	var ids []uint
	for _, w := range []float64{92, 90.5, 89, 88} {
		e, err := svc.Append(student.ID, w, "", time.Time{})
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	for _, id := range ids[1:] {
		require.NoError(t, svc.Remove(student.ID, id))
	}

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 92.0, user.WeightKg)
}

func TestWeightService_RemoveAllClearsProfile(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-clear@test.local")
	svc := services.NewWeightService(db)

	entries := make([]*models.WeightEntry, 0, 3)
	for _, w := range []float64{92, 90, 89} {
		e, err := svc.Append(student.ID, w, "", time.Time{})
		require.NoError(t, err)
		entries = append(entries, e)
	}
	for _, e := range entries {
		require.NoError(t, svc.Remove(student.ID, e.ID))
	}

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 0.0, user.WeightKg)
	require.Equal(t, 0.0, user.BMI)
}

func TestWeightService_RemoveUnknownID(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-unknown@test.local")
	svc := services.NewWeightService(db)

	require.ErrorIs(t, svc.Remove(student.ID, 9999), services.ErrNotFound)
}

func TestWeightService_RemoveOtherUsersEntry(t *testing.T) {
	db := newTestDB(t)
	owner := createStudent(t, db, "weight-owner@test.local")
	other := createStudent(t, db, "weight-other@test.local")
	svc := services.NewWeightService(db)

	entry, err := svc.Append(owner.ID, 80, "", time.Time{})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Remove(other.ID, entry.ID), services.ErrNotFound)

	entries, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWeightService_UpdateOlderEntryLeavesProfile(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-older@test.local")
	svc := services.NewWeightService(db)

	first, err := svc.Append(student.ID, 90, "", time.Time{})
	require.NoError(t, err)
	_, err = svc.Append(student.ID, 88, "", time.Time{})
	require.NoError(t, err)

	w := 95.0
	_, err = svc.Update(student.ID, first.ID, services.WeightPatch{WeightKg: &w})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 88.0, user.WeightKg)
}

func TestWeightService_UpdateLatestMovesProfile(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-latest@test.local")
	svc := services.NewWeightService(db)

	_, err := svc.Append(student.ID, 90, "", time.Time{})
	require.NoError(t, err)
	latest, err := svc.Append(student.ID, 88, "", time.Time{})
	require.NoError(t, err)

	w := 86.5
	_, err = svc.Update(student.ID, latest.ID, services.WeightPatch{WeightKg: &w})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, student.ID).Error)
	require.Equal(t, 86.5, user.WeightKg)
}

func TestWeightService_AppendRejectsNonPositive(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-invalid@test.local")
	svc := services.NewWeightService(db)

	_, err := svc.Append(student.ID, 0, "", time.Time{})
	require.Error(t, err)
	_, err = svc.Append(student.ID, -4, "", time.Time{})
	require.Error(t, err)
}

func TestWeightService_ListInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "weight-order@test.local")
	svc := services.NewWeightService(db)

	for _, w := range []float64{91, 89.5, 90.2} {
		_, err := svc.Append(student.ID, w, "", time.Time{})
		require.NoError(t, err)
	}

	entries, err := svc.List(student.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, 91.0, entries[0].WeightKg)
	require.Equal(t, 89.5, entries[1].WeightKg)
	require.Equal(t, 90.2, entries[2].WeightKg)
}
