package service

import (
	"context"
	"errors"

	"usersvc/internal/users/importer"
	"usersvc/internal/users/model"
	"usersvc/internal/users/repository"
)

// headerRowOffset makes row numbers match what the uploader sees in the
// sheet: the header is row 1, so the first data row reports as row 2.
const headerRowOffset = 2

// BulkImport reconciles data rows against the store in row order.
// Each row either inserts a new record, updates the record holding the
// same email, or becomes a failed-row entry; one bad row never aborts
// the batch. Rows run strictly sequentially, so a later row with the
// same new email as an earlier one sees the earlier insert and updates
// it.
func (s *Service) BulkImport(ctx context.Context, rows []importer.Row) *model.BulkImportResult {
	result := &model.BulkImportResult{
		Inserted: []*model.User{},
		Updated:  []*model.User{},
		Failed:   []model.FailedRow{},
	}

	for i, row := range rows {
		rowNum := i + headerRowOffset

		cand := row.Candidate()
		cand.Email = NormalizeEmail(cand.Email)

		if verr := cand.Validate(); verr != nil {
			result.Failed = append(result.Failed, model.FailedRow{
				Row:    rowNum,
				Errors: verr.Messages(),
			})
			continue
		}

		existing, err := s.Repo.FindByEmail(ctx, cand.Email)
		switch {
		case err == nil:
			// Email is the sole reconciliation key: a matching record is
			// always updated, with all six fields taken from the row.
			updated, uerr := s.Repo.UpdateByID(ctx, existing.ID.Hex(), cand.Update())
			if uerr != nil {
				result.Failed = append(result.Failed, failedRow(rowNum, uerr))
				continue
			}
			result.Updated = append(result.Updated, updated)

		case errors.Is(err, repository.ErrNotFound):
			inserted, ierr := s.Repo.Insert(ctx, cand.User())
			if ierr != nil {
				result.Failed = append(result.Failed, failedRow(rowNum, ierr))
				continue
			}
			result.Inserted = append(result.Inserted, inserted)

		default:
			result.Failed = append(result.Failed, failedRow(rowNum, err))
		}
	}

	return result
}

func failedRow(rowNum int, err error) model.FailedRow {
	msg := err.Error()
	if errors.Is(err, repository.ErrDuplicate) {
		msg = "duplicate email or phone number"
	}
	return model.FailedRow{Row: rowNum, Errors: []string{msg}}
}
