package recebiveis

import (
	"context"

	"github.com/gestaofacil/recebiveis-api/internal/domain/entity"
)

// DuplicataPDFGenerator gera a representação imprimível de uma duplicata.
type DuplicataPDFGenerator interface {
	GenerateDuplicataPDF(
		ctx context.Context,
		duplicata *entity.Duplicata,
		empresa *entity.Empresa,
		cliente *entity.Cliente,
		baixas []*entity.Baixa,
	) ([]byte, error)
}
