package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/safety_response_coordinator/internal/ert"
	"github.com/shenikar/safety_response_coordinator/internal/models"
	"github.com/shenikar/safety_response_coordinator/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"go.uber.org/mock/gomock"
)

func testRoster() *ert.Roster {
	return ert.NewRoster(
		models.ERTStaffMember{
			ID:     "ert-busy",
			Name:   "Busy Expert",
			Status: models.StaffBusy,
			Skills: []string{"Crisis Management", "Tactical Response", "De-escalation", "Emergency Medicine"},
		},
		models.ERTStaffMember{
			ID:     "ert-a",
			Name:   "Available Generalist",
			Status: models.StaffAvailable,
			Skills: []string{"Crisis Management"},
		},
		models.ERTStaffMember{
			ID:     "ert-b",
			Name:   "Available Medic",
			Status: models.StaffAvailable,
			Skills: []string{"emergency medicine", "de-escalation"},
		},
	)
}

func newTestDispatchService(t *testing.T) (*dispatchService, *mocks.MockIncidentRepository, *mocks.MockDispatchQueue, *ert.Roster) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	queueMock := mocks.NewMockDispatchQueue(ctrl)
	roster := testRoster()

	service := NewDispatchService(repoMock, roster, ert.NewMatcher(ert.DefaultRequiredSkills()), queueMock, clockz.NewFakeClock(), newTestLogger())
	return service.(*dispatchService), repoMock, queueMock, roster
}

func TestRecommend_RanksAvailableFirst(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "INC-1").Return(&models.Incident{ID: "INC-1", Category: models.CategorySOS}, nil)

	// Действие
	recs, err := service.Recommend(ctx, "INC-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "ert-b", recs[0].Staff.ID)
	assert.Equal(t, "ert-a", recs[1].Staff.ID)
	assert.Equal(t, "ert-busy", recs[2].Staff.ID)
	assert.False(t, recs[2].Selectable)
	assert.Equal(t, 1.0, recs[2].RelevanceScore)
}

func TestRecommend_IncidentNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "missing").Return(nil, models.ErrIncidentNotFound)

	// Действие
	_, err := service.Recommend(ctx, "missing")

	// Проверки
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestRequestDispatch_EnqueuesWithoutTouchingStatus(t *testing.T) {
	// Подготовка
	service, repoMock, queueMock, roster := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "INC-1").Return(&models.Incident{ID: "INC-1"}, nil)
	queueMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.DispatchRequest) error {
			assert.Equal(t, "INC-1", req.IncidentID)
			assert.Equal(t, []string{"ert-a", "ert-b"}, req.StaffIDs)
			return nil
		})

	// Действие
	request, err := service.RequestDispatch(ctx, "INC-1", []string{"ert-a", "ert-b", "ert-a"})

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, request.ID)
	member, _ := roster.Get("ert-a")
	assert.Equal(t, models.StaffAvailable, member.Status)
}

func TestRequestDispatch_RejectsBusyStaff(t *testing.T) {
	// Подготовка
	service, repoMock, queueMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "INC-1").Return(&models.Incident{ID: "INC-1"}, nil)
	queueMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.RequestDispatch(ctx, "INC-1", []string{"ert-a", "ert-busy"})

	// Проверки
	assert.ErrorIs(t, err, models.ErrStaffNotSelectable)
}

func TestRequestDispatch_UnknownStaff(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "INC-1").Return(&models.Incident{ID: "INC-1"}, nil)

	// Действие
	_, err := service.RequestDispatch(ctx, "INC-1", []string{"ghost"})

	// Проверки
	assert.ErrorIs(t, err, models.ErrStaffNotFound)
}

func TestRequestDispatch_QueueFailure(t *testing.T) {
	// Подготовка
	service, repoMock, queueMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	queueErr := errors.New("redis unavailable")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "INC-1").Return(&models.Incident{ID: "INC-1"}, nil)
	queueMock.EXPECT().Publish(ctx, gomock.Any()).Return(queueErr)

	// Действие
	_, err := service.RequestDispatch(ctx, "INC-1", []string{"ert-a"})

	// Проверки
	assert.ErrorIs(t, err, queueErr)
}

func TestConfirmDispatch_ReflectsStatus(t *testing.T) {
	// Подготовка
	service, _, _, roster := newTestDispatchService(t)
	ctx := context.Background()

	// Действие
	member, err := service.ConfirmDispatch(ctx, "ert-a", models.StaffDispatched)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StaffDispatched, member.Status)
	stored, _ := roster.Get("ert-a")
	assert.Equal(t, models.StaffDispatched, stored.Status)

	// Отправленный сотрудник больше не выбирается
	recs := service.RecommendForCategory(models.CategorySOS)
	for _, rec := range recs {
		if rec.Staff.ID == "ert-a" {
			assert.False(t, rec.Selectable)
		}
	}
}

func TestConfirmDispatch_Errors(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Действие
	_, unknownStaff := service.ConfirmDispatch(ctx, "ghost", models.StaffDispatched)
	_, badStatus := service.ConfirmDispatch(ctx, "ert-a", "ON_BREAK")

	// Проверки
	assert.ErrorIs(t, unknownStaff, models.ErrStaffNotFound)
	assert.ErrorContains(t, badStatus, "unknown staff status")
}

func TestUpsertStaff_DefaultsAndList(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Действие
	member, err := service.UpsertStaff(ctx, models.ERTStaffMember{Name: "New Responder", Skills: []string{"Evidence Collection"}})

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, models.StaffAvailable, member.Status)
	roster := service.ListRoster(ctx)
	require.Len(t, roster, 4)
	assert.Equal(t, member.ID, roster[3].ID)
}
