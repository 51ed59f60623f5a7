package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/clinicmatch/internal/db"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

// RunListClinicsCommand prints every office employing a doctor who practises
// specialty, seeding the directory first when the database is new.
func RunListClinicsCommand(dbPath string, specialty string, out io.Writer) error {
	if strings.TrimSpace(specialty) == "" {
		return errors.New("specialty is required")
	}
	if _, ok := services.CanonicalSpecialty(specialty); !ok {
		return fmt.Errorf("unknown specialty %q", specialty)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	repositories := db.NewRepositories(database)
	clinics := services.NewClinicService(repositories.Offices, repositories.Doctors)
	if err := clinics.EnsureDirectory(); err != nil {
		return err
	}

	offices, err := clinics.OfficesWithSpecialty(specialty)
	if err != nil {
		return err
	}
	return writeClinicListing(out, specialty, offices)
}

func writeClinicListing(out io.Writer, specialty string, offices []services.SpecialtyOffice) error {
	if len(offices) == 0 {
		_, err := fmt.Fprintf(out, "No offices offer %s.\n", specialty)
		return err
	}

	canonical := offices[0].Specialty
	if _, err := fmt.Fprintf(out, "Offices offering %s:\n", canonical); err != nil {
		return err
	}
	for _, entry := range offices {
		names := make([]string, 0, len(entry.Doctors))
		for _, doctor := range entry.Doctors {
			names = append(names, doctor.Name)
		}
		if _, err := fmt.Fprintf(out, "- %s (manager %s): %s\n", entry.Office.Name, entry.Office.Manager, strings.Join(names, ", ")); err != nil {
			return err
		}
	}
	return nil
}
