package postgres

import "database/sql"

// Repos agrupa los repositorios que comparten un *sql.DB.
type Repos struct {
	Users        *UsersRepo
	Pets         *PetsRepo
	Vaccines     *VaccinesRepo
	Vaccinations *VaccinationsRepo
}

func NewRepos(db *sql.DB) *Repos {
	return &Repos{
		Users:        NewUsersRepo(db),
		Pets:         NewPetsRepo(db),
		Vaccines:     NewVaccinesRepo(db),
		Vaccinations: NewVaccinationsRepo(db),
	}
}
