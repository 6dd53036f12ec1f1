package usecase

import (
	"context"
	"testing"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRequest(patientID string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        "doc3",
		AppointmentDate: "2024-09-01",
		AppointmentTime: "11:30",
		Reason:          "Knee pain",
	}
}

func TestGetAppointmentsFiltersByRole(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	mine, err := env.appointments.GetAppointments(ctx, arjun)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "app1", mine[0].ID)
	assert.Equal(t, "Arjun Mehta", mine[0].PatientName)
	assert.Equal(t, "Dr. Rajesh Sharma", mine[0].DoctorName)
	assert.Equal(t, "Cardiology", mine[0].DoctorSpecialization)

	withMe, err := env.appointments.GetAppointments(ctx, drPatel)
	require.NoError(t, err)
	require.Len(t, withMe, 1)
	assert.Equal(t, "app2", withMe[0].ID)

	none, err := env.appointments.GetAppointments(ctx, entity.Identity{ID: "doc4", Role: entity.RoleDoctor})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.appointments.CreateAppointment(ctx, arjun, bookingRequest("pat1"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.AppointmentID)

	stored, ok := env.db.Appointments.Get(resp.AppointmentID)
	require.True(t, ok)
	assert.Equal(t, entity.AppointmentStatusScheduled, stored.Status)
	assert.Equal(t, "doc3", stored.DoctorID)

	mine, err := env.appointments.GetAppointments(ctx, arjun)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	drKumar := entity.Identity{ID: "doc3", Role: entity.RoleDoctor}
	withMe, err := env.appointments.GetAppointments(ctx, drKumar)
	require.NoError(t, err)
	require.Len(t, withMe, 1)
	assert.Equal(t, resp.AppointmentID, withMe[0].ID)
}

func TestCreateAppointmentIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.appointments.CreateAppointment(ctx, arjun, bookingRequest("pat1"))
	require.NoError(t, err)
	second, err := env.appointments.CreateAppointment(ctx, arjun, bookingRequest("pat1"))
	require.NoError(t, err)
	assert.NotEqual(t, first.AppointmentID, second.AppointmentID)
}

func TestCreateAppointmentRejectsDoctors(t *testing.T) {
	env := newTestEnv(t)
	before := env.db.Appointments.Len()

	_, err := env.appointments.CreateAppointment(context.Background(), drSharma, bookingRequest("pat1"))
	assert.ErrorIs(t, err, ErrOnlyPatientsCanBook)
	assert.Equal(t, before, env.db.Appointments.Len())
}

func TestCreateAppointmentForAnotherPatientIsLogged(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	resp, err := env.appointments.CreateAppointment(ctx, arjun, bookingRequest("pat2"))
	require.NoError(t, err)

	stored, ok := env.db.Appointments.Get(resp.AppointmentID)
	require.True(t, ok)
	assert.Equal(t, "pat2", stored.PatientID)

	var warned bool
	for _, entry := range env.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["patient_id"] == "pat2" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestGetAppointmentsWithDanglingReferences(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.appointments.CreateAppointment(ctx, arjun, &dto.CreateAppointmentRequest{
		PatientID:       "pat1",
		DoctorID:        "doc99",
		AppointmentDate: "2024-09-01",
		AppointmentTime: "09:00",
		Reason:          "Second opinion",
	})
	require.NoError(t, err)

	mine, err := env.appointments.GetAppointments(ctx, arjun)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, converter.UnknownPlaceholder, mine[1].DoctorName)
	assert.Equal(t, converter.UnknownPlaceholder, mine[1].DoctorSpecialization)
	assert.Equal(t, "Arjun Mehta", mine[1].PatientName)
}
