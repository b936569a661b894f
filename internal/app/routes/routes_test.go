package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emre/classpulse/internal/app/controllers"
	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/repositories/mocks"
	"github.com/emre/classpulse/internal/app/services"
	"github.com/emre/classpulse/internal/middleware"
	"github.com/emre/classpulse/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	router      *gin.Engine
	token       string
	studentRepo *mocks.MockStudentRepo
	pointRepo   *mocks.MockPointRepo
	noteRepo    *mocks.MockNotificationRepo
}

// newRouterFixture wires the full route tree against mocked repositories for
// the given caller.
func newRouterFixture(t *testing.T, caller *models.Student) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	token, err := jwtService.GenerateToken(caller)
	assert.NoError(t, err)

	studentRepo := new(mocks.MockStudentRepo)
	studentRepo.On("GetByID", mock.Anything, caller.ID).Return(caller, nil)

	pointRepo := new(mocks.MockPointRepo)
	noteRepo := new(mocks.MockNotificationRepo)

	lgr := zerolog.Nop()
	authService := services.NewAuthService(studentRepo, jwtService, lgr)
	pointService := services.NewPointService(pointRepo, lgr)
	statsService := services.NewStatsService(pointRepo)
	adminService := services.NewAdminService(studentRepo, lgr)
	notificationService := services.NewNotificationService(noteRepo)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewPointController(pointService, lgr),
		controllers.NewStatsController(statsService),
		controllers.NewAdminController(adminService, lgr),
		controllers.NewNotificationController(notificationService),
		middleware.NewAuthMiddleware(jwtService, studentRepo),
		nil,
	)

	return &routerFixture{
		router:      router,
		token:       token,
		studentRepo: studentRepo,
		pointRepo:   pointRepo,
		noteRepo:    noteRepo,
	}
}

func (f *routerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func activeStudent() *models.Student {
	return &models.Student{
		ID:           7,
		StudentID:    "20230042",
		Name:         "Jane Doe",
		ClassSection: "CS-A",
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}
}

func suspendedStudent() *models.Student {
	s := activeStudent()
	s.Status = models.StatusSuspended
	return s
}

// The aggregation views live under /points alongside the ledger routes.
func TestAggregationRoutesUnderPoints(t *testing.T) {
	f := newRouterFixture(t, activeStudent())
	f.pointRepo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{}, nil)
	f.pointRepo.On("TotalsBySection", mock.Anything).Return([]models.SectionTotal{}, nil)
	f.pointRepo.On("TotalsByDay", mock.Anything).Return([]models.BucketTotal{}, nil)
	f.pointRepo.On("TotalsByMonth", mock.Anything).Return([]models.BucketTotal{}, nil)
	f.pointRepo.On("TotalsByWeek", mock.Anything).Return([]models.BucketTotal{}, nil)
	f.pointRepo.On("CountAndSum", mock.Anything).Return(int64(0), int64(0), nil)

	for _, path := range []string{
		"/api/v1/points/leaderboard",
		"/api/v1/points/sections",
		"/api/v1/points/top-contributors",
		"/api/v1/points/statistics",
	} {
		w := f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestMandatoryUpdateIsPatch(t *testing.T) {
	f := newRouterFixture(t, activeStudent())
	f.studentRepo.On("StudentIDTaken", mock.Anything, "20230099", int64(7)).Return(false, nil)
	f.studentRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	body := `{"studentId":"20230099","classSection":"CS-B"}`

	w := f.do(http.MethodPatch, "/api/v1/auth/mandatory-update", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/v1/auth/mandatory-update", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Suspended accounts keep read access; only writing to the ledger is gated
// on active status.
func TestSuspendedStudentReadsButCannotWrite(t *testing.T) {
	f := newRouterFixture(t, suspendedStudent())
	f.pointRepo.On("ListByStudent", mock.Anything, int64(7), mock.Anything).
		Return([]models.EngagementPoint{}, nil)
	f.noteRepo.On("ListByStudent", mock.Anything, int64(7)).
		Return([]models.Notification{}, nil)
	f.pointRepo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/points/history", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/notifications", "").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/points/leaderboard", "").Code)

	award := `{"points":5,"reason":"helped with the lab setup"}`
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/points", award).Code)

	edit := `{"points":5,"reason":"updated reason with enough length"}`
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPatch, "/api/v1/points/1", edit).Code)

	f.pointRepo.AssertNotCalled(t, "CreateWithNotification", mock.Anything, mock.Anything, mock.Anything)
}
