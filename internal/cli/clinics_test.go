package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/clinicmatch/internal/models"
	"github.com/terraincognita07/clinicmatch/internal/services"
)

func TestRunListClinicsCommandRejectsBlankSpecialty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunListClinicsCommand(filepath.Join(t.TempDir(), "clinics.db"), "  ", &out); err == nil {
		t.Fatal("expected blank specialty to fail")
	}
}

func TestRunListClinicsCommandRejectsUnknownSpecialty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := RunListClinicsCommand(filepath.Join(t.TempDir(), "clinics.db"), "Astrology", &out)
	if err == nil {
		t.Fatal("expected unknown specialty to fail")
	}
	if !strings.Contains(err.Error(), "Astrology") {
		t.Fatalf("expected error to name the specialty, got %v", err)
	}
}

func TestRunListClinicsCommandListsSeededOffices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunListClinicsCommand(filepath.Join(t.TempDir(), "clinics.db"), "sleep medicine", &out); err != nil {
		t.Fatalf("RunListClinicsCommand returned error: %v", err)
	}

	rendered := out.String()
	for _, expected := range []string{
		"Offices offering Sleep Medicine:",
		"- Eastview (manager Melody): Dr. Eduardo Gonzalez, Dr. Jones Bones",
		"- Southtown (manager Clair): Dr. Aisha Amari",
	} {
		if !strings.Contains(rendered, expected) {
			t.Fatalf("expected output to contain %q, got:\n%s", expected, rendered)
		}
	}
	if strings.Contains(rendered, "Northdale") {
		t.Fatalf("did not expect Northdale in sleep medicine listing:\n%s", rendered)
	}
}

func TestWriteClinicListingWithoutOffices(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := writeClinicListing(&out, "Podiatry", nil); err != nil {
		t.Fatalf("writeClinicListing returned error: %v", err)
	}
	if out.String() != "No offices offer Podiatry.\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestWriteClinicListingUsesCanonicalSpecialty(t *testing.T) {
	t.Parallel()

	offices := []services.SpecialtyOffice{{
		Office:    models.Office{Name: "Westshire", Manager: "Brandy"},
		Specialty: "Cardiology",
		Doctors:   []models.Doctor{{Name: "Dr. Bill Nye"}},
	}}

	var out bytes.Buffer
	if err := writeClinicListing(&out, "cardiology", offices); err != nil {
		t.Fatalf("writeClinicListing returned error: %v", err)
	}
	want := "Offices offering Cardiology:\n- Westshire (manager Brandy): Dr. Bill Nye\n"
	if out.String() != want {
		t.Fatalf("writeClinicListing output = %q, want %q", out.String(), want)
	}
}
