package repository

import (
	"github.com/hirestream/hirestream/internal/domain/auth"
	"github.com/hirestream/hirestream/internal/domain/company"
	"github.com/hirestream/hirestream/internal/domain/document"
	"github.com/hirestream/hirestream/internal/domain/person"
	"github.com/hirestream/hirestream/internal/domain/user"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	postgresRepo "github.com/hirestream/hirestream/internal/repository/postgres"
)

func NewPersonRepository(db *postgres.DB, logger *logger.Logger) person.Repository {
	return postgresRepo.NewPersonRepository(db, logger)
}

func NewCompanyRepository(db *postgres.DB, logger *logger.Logger) company.Repository {
	return postgresRepo.NewCompanyRepository(db, logger)
}

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return postgresRepo.NewDocumentRepository(db, logger)
}

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewAuthRepository(db *postgres.DB, logger *logger.Logger) auth.Repository {
	return postgresRepo.NewAuthRepository(db, logger)
}
