package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	mock_repository "github.com/245124737105-sketch/PolyglotPal/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationsR_AddTranslation(t *testing.T) {
	t.Parallel()

	rec := models.TranslationRecord{
		ID: "t1", UserID: "u1", SourceText: "Hello", TranslatedText: "Hola",
		SourceLang: "en", TargetLang: "es", Timestamp: time.Now(),
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "t1", "u1", "Hello", "Hola", "en", "es", rec.Timestamp).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mock_repository.NewMockQueryI(ctrl)
			tt.f(db)

			err := NewTranslationsRepository(db).AddTranslation(context.Background(), rec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTranslationsR_UserTranslations(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expected := []models.TranslationRecord{
		{ID: "t2", UserID: "u1", SourceText: "Cat", Timestamp: now},
		{ID: "t1", UserID: "u1", SourceText: "Dog", Timestamp: now.Add(-time.Minute)},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.TranslationRecord
		wantErr bool
	}{
		{
			name: "success ordered by the database",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expected), gomock.Any(), "u1", 5).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "ORDER BY created_at DESC")
						assert.Contains(t, query, "LIMIT $2")
						slice := dest.(*[]models.TranslationRecord)
						*slice = append(*slice, expected...)
						return nil
					})
			},
			want: expected,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mock_repository.NewMockQueryI(ctrl)
			tt.f(db)

			got, err := NewTranslationsRepository(db).UserTranslations(context.Background(), "u1", 5)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizR_AddQuizResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			db := mock_repository.NewMockQueryI(ctrl)
			tt.f(db)

			err := NewQuizRepository(db).AddQuizResult(context.Background(), models.QuizResult{ID: "q1", UserID: "u1"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestQuizR_UserResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []models.QuizResult{{ID: "q1", UserID: "u1", Language: "es", Score: 75, TotalQuestions: 4, CorrectAnswers: 3}}

	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expected), gomock.Any(), "u1", 10).
		DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
			assert.Contains(t, query, "ORDER BY created_at DESC")
			slice := dest.(*[]models.QuizResult)
			*slice = append(*slice, expected...)
			return nil
		})

	got, err := NewQuizRepository(db).UserResults(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestProgressR(t *testing.T) {
	t.Parallel()

	at := time.Now()

	t.Run("upsert overwrites values", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := mock_repository.NewMockQueryI(ctrl)
		db.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "u1", "es", 50, 12, at).
			DoAndReturn(func(ctx context.Context, query string, args ...any) (interface{}, error) {
				assert.Contains(t, query, "words_learned = EXCLUDED.words_learned")
				return nil, nil
			})

		err := NewProgressRepository(db).UpsertProgress(context.Background(), models.LanguageProgress{
			UserID: "u1", LanguageCode: "es", ProgressPercent: 50, WordsLearned: 12, LastPracticed: at,
		})
		require.NoError(t, err)
	})

	t.Run("practice accumulates words", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := mock_repository.NewMockQueryI(ctrl)
		db.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "u1", "fr", 75, 3, at).
			DoAndReturn(func(ctx context.Context, query string, args ...any) (interface{}, error) {
				assert.Contains(t, query, "words_learned = language_progress.words_learned + EXCLUDED.words_learned")
				return nil, nil
			})

		require.NoError(t, NewProgressRepository(db).AddPractice(context.Background(), "u1", "fr", 75, 3, at))
	})

	t.Run("all progress keyed by language", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := []models.LanguageProgress{
			{UserID: "u1", LanguageCode: "es", ProgressPercent: 50},
			{UserID: "u1", LanguageCode: "ja", ProgressPercent: 10},
		}

		db := mock_repository.NewMockQueryI(ctrl)
		db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "u1").
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*[]models.LanguageProgress) = rows
				return nil
			})

		got, err := NewProgressRepository(db).AllProgress(context.Background(), "u1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 50, got["es"].ProgressPercent)
		assert.Equal(t, 10, got["ja"].ProgressPercent)
	})

	t.Run("all progress db error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		db := mock_repository.NewMockQueryI(ctrl)
		db.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := NewProgressRepository(db).AllProgress(context.Background(), "u1")
		require.Error(t, err)
	})
}
