package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	mock_handler "github.com/245124737105-sketch/PolyglotPal/internal/handler/mock"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	stored := models.User{ID: "u1", Email: "ann@example.com", Username: "Ann"}

	tests := []struct {
		name       string
		form       url.Values
		f          func(*mock_handler.MockServiceI)
		wantCode   int
		wantBody   string
		wantCookie bool
	}{
		{
			name: "success",
			form: url.Values{"email": {"ann@example.com"}, "password": {"secret1"}},
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), models.LoginForm{Email: "ann@example.com", Password: "secret1"}).Return(stored, nil)
			},
			wantCode:   http.StatusFound,
			wantCookie: true,
		},
		{
			name: "bad credentials",
			form: url.Values{"email": {"ann@example.com"}, "password": {"nope"}},
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("wrong password: %w", common.ErrUnauthorized))
			},
			wantCode: http.StatusUnauthorized,
			wantBody: loginFailedMessage,
		},
		{
			name: "store failure",
			form: url.Values{"email": {"ann@example.com"}, "password": {"secret1"}},
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "Something went wrong",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestRouter(t, ctrl, tt.f)
			w := r.do(t, formRequest("/login", tt.form), nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)

			cookie := sessionCookie(w)
			if !tt.wantCookie {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, "/dashboard", w.Header().Get("Location"))

			user, err := r.sessions.ParseToken(cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, stored.Session(), user)
		})
	}
}

func TestLogin_TokenFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_handler.NewMockServiceI(ctrl)
	service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{ID: "u1"}, nil)

	sessions := mock_handler.NewMockSessionI(ctrl)
	sessions.EXPECT().GenerateToken(gomock.Any()).Return("", errors.New("signing failed"))

	engine, err := NewHandler(service, sessions, testCookie, zap.NewNop()).InitRoutes()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, formRequest("/login", url.Values{"email": {"a@b.c"}, "password": {"secret1"}}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"secret1"}}

	tests := []struct {
		name       string
		f          func(*mock_handler.MockServiceI)
		wantCode   int
		wantBody   string
		wantCookie bool
	}{
		{
			name: "success",
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().SignUp(gomock.Any(), models.SignUpForm{Username: "Ann", Email: "ann@example.com", Password: "secret1"}).
					Return(models.User{ID: "u1", Email: "ann@example.com", Username: "Ann"}, nil)
			},
			wantCode:   http.StatusFound,
			wantCookie: true,
		},
		{
			name: "email exists",
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(models.User{}, common.ErrAlreadyExists)
			},
			wantCode: http.StatusConflict,
			wantBody: "Email address already exists.",
		},
		{
			name: "invalid form",
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(models.User{}, common.ErrValidation)
			},
			wantCode: http.StatusBadRequest,
			wantBody: "at least 6 characters",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestRouter(t, ctrl, tt.f)
			w := r.do(t, formRequest("/signup", form), nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			if tt.wantCookie {
				require.NotNil(t, sessionCookie(w))
				assert.Equal(t, "/dashboard", w.Header().Get("Location"))
			} else {
				assert.Nil(t, sessionCookie(w))
			}
		})
	}
}

func TestAuthForms_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantBody string
	}{
		{name: "login", path: "/login", wantBody: loginFailedMessage},
		{name: "sign up", path: "/signup", wantBody: "at least 6 characters"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no service calls are expected
			r := newTestRouter(t, ctrl, nil)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader("email=%zz&password=secret1"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := r.do(t, req, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Nil(t, sessionCookie(w))
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRouter(t, ctrl, nil)
	w := r.do(t, httptest.NewRequest(http.MethodGet, "/logout", nil), &testUser)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		f        func(*mock_handler.MockServiceI)
		wantBody []string
	}{
		{
			name: "renders stats",
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().UserByID(gomock.Any(), "u1").Return(models.User{ID: "u1", Username: "Annie"}, nil)
				ms.EXPECT().GetStats(gomock.Any(), "u1").Return(models.UserStats{TotalPoints: 120, QuizzesTaken: 2}, nil)
			},
			wantBody: []string{"Welcome back, Annie!", "<strong>120</strong>points", "<strong>2</strong>quizzes taken"},
		},
		{
			name: "store failures render zeros",
			f: func(ms *mock_handler.MockServiceI) {
				ms.EXPECT().UserByID(gomock.Any(), "u1").Return(models.User{}, errors.New("db down"))
				ms.EXPECT().GetStats(gomock.Any(), "u1").Return(models.UserStats{}, errors.New("db down"))
			},
			wantBody: []string{"Welcome back, Ann!", "<strong>0</strong>points", time.Now().Format("2006")},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestRouter(t, ctrl, tt.f)
			w := r.do(t, httptest.NewRequest(http.MethodGet, "/dashboard", nil), &testUser)

			assert.Equal(t, http.StatusOK, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestPublicPages(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/login", "/signup"} {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := newTestRouter(t, ctrl, nil)
			w := r.do(t, httptest.NewRequest(http.MethodGet, path, nil), nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "PolyglotPal")
			assert.NotContains(t, w.Body.String(), "no value")
		})
	}
}

func TestTranslatePage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRouter(t, ctrl, nil)
	w := r.do(t, httptest.NewRequest(http.MethodGet, "/translate", nil), &testUser)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="ja">Japanese</option>`)
}

func TestQuizPage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRouter(t, ctrl, nil)
	w := r.do(t, httptest.NewRequest(http.MethodGet, "/quiz", nil), &testUser)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="es" selected>Spanish</option>`)
	assert.Contains(t, w.Body.String(), `<option value="ja">Japanese</option>`)
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
