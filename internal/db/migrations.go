package db

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/clinicmatch/migrations"
	"gorm.io/gorm"
)

// Migration files are named <version>_<label>.sql. Anything else in the
// directory is ignored.
var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

var errEmptyMigration = errors.New("migration has no SQL statements")

type sqlMigration struct {
	version    string
	order      int
	file       string
	statements []string
}

type schemaMigration struct {
	Version string `gorm:"column:version;primaryKey"`
	Name    string `gorm:"column:name"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return runMigrations(database, embeddedmigrations.Files)
}

func runMigrations(database *gorm.DB, files fs.FS) error {
	pending, err := loadEmbeddedMigrations(files)
	if err != nil {
		return err
	}

	if err := database.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var applied []string
	if err := database.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}

	for _, migration := range pending {
		if slices.Contains(applied, migration.version) {
			continue
		}
		if err := database.Transaction(migration.apply); err != nil {
			return err
		}
		log.Printf("applied migration %s", migration.file)
	}
	return nil
}

func (migration sqlMigration) apply(tx *gorm.DB) error {
	for _, statement := range migration.statements {
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("execute migration %s statement %q: %w", migration.file, statement, err)
		}
	}
	record := schemaMigration{Version: migration.version, Name: migration.file}
	if err := tx.Create(&record).Error; err != nil {
		return fmt.Errorf("record migration %s: %w", migration.file, err)
	}
	return nil
}

// loadEmbeddedMigrations parses every migration file up front so a broken
// file fails startup before any statement runs.
func loadEmbeddedMigrations(files fs.FS) ([]sqlMigration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(entries))
	byVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if entry.IsDir() || matches == nil {
			continue
		}

		file, version := matches[0], matches[1]
		if previous, ok := byVersion[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, previous, file)
		}
		byVersion[version] = file

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", file, err)
		}
		body, err := fs.ReadFile(files, file)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", file, err)
		}
		statements := splitSQLStatements(string(body))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s: %w", file, errEmptyMigration)
		}

		migrations = append(migrations, sqlMigration{version: version, order: order, file: file, statements: statements})
	}

	slices.SortFunc(migrations, func(a, b sqlMigration) int {
		return cmp.Or(cmp.Compare(a.order, b.order), strings.Compare(a.file, b.file))
	})
	return migrations, nil
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
