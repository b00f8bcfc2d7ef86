package pets

import "context"

// OwnerOf expone el owner de una mascota sin chequear permisos.
// Lo usa vaccinations para validar el campo pet sin importar el resto del módulo.
func (s *Service) OwnerOf(ctx context.Context, petID int64) (int64, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return 0, err
	}
	return p.OwnerID, nil
}
