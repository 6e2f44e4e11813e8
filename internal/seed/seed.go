package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/varunm/batchswap/internal/app/models"
	appRepos "github.com/varunm/batchswap/internal/app/repositories"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// CreateSampleStudents inserts a handful of students for local development.
// Existing students are left untouched.
func CreateSampleStudents(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating sample students...")

	samples := []*appModels.Student{
		{
			Email:         "anita.rao2022b@vitstudent.ac.in",
			FirstName:     "Anita",
			LastName:      "Rao2",
			CGPA:          8.55,
			CurrentBatch:  appModels.BatchForenoon,
			OriginalBatch: appModels.BatchForenoon,
		},
		{
			Email:         "mira.nair2023f@vitstudent.ac.in",
			FirstName:     "Mira",
			LastName:      "Nair2",
			CGPA:          8.50,
			CurrentBatch:  appModels.BatchEvening1,
			OriginalBatch: appModels.BatchEvening1,
		},
		{
			Email:         "rahul.menon2021a@vitstudent.ac.in",
			FirstName:     "Rahul",
			LastName:      "Menon2",
			CGPA:          8.60,
			CurrentBatch:  appModels.BatchEvening2,
			OriginalBatch: appModels.BatchEvening2,
		},
		{
			Email:         "dev.sharma2022c@vitstudent.ac.in",
			FirstName:     "Dev",
			LastName:      "Sharma2",
			CGPA:          9.10,
			CurrentBatch:  appModels.BatchForenoon,
			OriginalBatch: appModels.BatchForenoon,
		},
	}

	var finalErr error
	for _, student := range samples {
		err := studentRepo.Create(ctx, student)
		if err != nil {
			if errors.Is(err, apperrors.ErrAlreadyRegistered) {
				continue
			}
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("email", student.Email).Int64("id", student.ID).Msg("Sample student created")
	}

	return finalErr
}
