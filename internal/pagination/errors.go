package pagination

import "github.com/Raymond9734/linkpager/internal/models"

// Request errors raised by the strategies. They unwrap to models.ErrNotFound
// so handlers answer 404, and are returned without further wrapping.
var (
	ErrInvalidPage = &models.AppError{
		Code:    models.CodeNotFound,
		Message: "Invalid page.",
		Err:     models.ErrNotFound,
	}

	ErrInvalidCursor = &models.AppError{
		Code:    models.CodeNotFound,
		Message: "Invalid cursor",
		Err:     models.ErrNotFound,
	}

	ErrInvalidOffset = &models.AppError{
		Code:    models.CodeNotFound,
		Message: "Invalid offset.",
		Err:     models.ErrNotFound,
	}
)
