package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"usersvc/internal/users/handler"
	"usersvc/internal/users/importer"
	"usersvc/internal/users/model"
	"usersvc/internal/users/router"
	"usersvc/internal/users/service"
	"usersvc/internal/users/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, cand model.CandidateUser) (*model.User, error) {
	args := m.Called(ctx, cand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) List(ctx context.Context, q model.ListQuery) ([]*model.User, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) BulkImport(ctx context.Context, rows []importer.Row) *model.BulkImportResult {
	args := m.Called(ctx, rows)
	return args.Get(0).(*model.BulkImportResult)
}

var _ service.UserService = (*MockUserService)(nil)

func SetupServer(t *testing.T, svc service.UserService) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(util.GetLogger())
	router.RegisterRoutes(e, handler.NewUserHandler(svc, t.TempDir()))
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
