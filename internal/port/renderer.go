package port

import (
	"io"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// Renderer writes conjugation results in one output format.
type Renderer interface {
	Render(w io.Writer, results []domain.Conjugation) error
}
