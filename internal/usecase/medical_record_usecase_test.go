package usecase

import (
	"context"
	"testing"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPatientRecordsSingleLink(t *testing.T) {
	db := database.NewStore()
	db.Doctors.Put("doc1", entity.Doctor{ID: "doc1", Name: "Dr. Rajesh Sharma", Specialization: "Cardiology"})
	db.Patients.Put("pat1", entity.Patient{ID: "pat1", Name: "Arjun Mehta"})
	db.MedicalRecords.Put("rec1", entity.MedicalRecord{ID: "rec1", PatientID: "pat1", DoctorID: "doc1", Diagnosis: "Hypertension"})
	env := newTestEnvWithStore(t, db)

	records, err := env.records.GetPatientRecords(context.Background(), arjun, "pat1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dr. Rajesh Sharma", records[0].DoctorName)
	assert.Equal(t, "Cardiology", records[0].DoctorSpecialization)
	assert.Equal(t, "Hypertension", records[0].Diagnosis)
}

func TestGetPatientRecordsSeeded(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	records, err := env.records.GetPatientRecords(ctx, drPatel, "pat1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "Dr. Rajesh Sharma", records[0].DoctorName)
	assert.Equal(t, "rec2", records[1].ID)
	assert.Equal(t, "Orthopedics", records[1].DoctorSpecialization)

	_, err = env.records.GetPatientRecords(ctx, kavya, "pat1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetPatientRecordsMissingDoctor(t *testing.T) {
	db := database.NewStore()
	db.MedicalRecords.Put("rec1", entity.MedicalRecord{ID: "rec1", PatientID: "pat1", DoctorID: "doc9"})
	env := newTestEnvWithStore(t, db)

	records, err := env.records.GetPatientRecords(context.Background(), arjun, "pat1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, converter.UnknownPlaceholder, records[0].DoctorName)
	assert.Equal(t, converter.UnknownPlaceholder, records[0].DoctorSpecialization)
}

func TestGetPatientRecordsDoesNotMutateStore(t *testing.T) {
	env := newTestEnv(t)

	before := env.db.MedicalRecords.Scan(nil)
	_, err := env.records.GetPatientRecords(context.Background(), arjun, "pat1")
	require.NoError(t, err)
	assert.Equal(t, before, env.db.MedicalRecords.Scan(nil))
}
