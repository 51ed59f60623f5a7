package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode json response: %v", err)
	}
}

func TestGetSpecialtiesListsCatalogue(t *testing.T) {
	app := newCheckerTestApp(t)

	var specialties []struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
	}
	decodeJSON(t, getPage(t, app, "/api/specialties", nil), &specialties)

	if len(specialties) != 10 {
		t.Fatalf("expected 10 specialties, got %d", len(specialties))
	}
	if specialties[0].Index != 1 || specialties[0].Name != "Cardiology" {
		t.Fatalf("unexpected first specialty %+v", specialties[0])
	}
	if specialties[9].Index != 10 || specialties[9].Name != "Sleep Medicine" {
		t.Fatalf("unexpected last specialty %+v", specialties[9])
	}
}

func TestGetSymptomRulesIncludesSentences(t *testing.T) {
	app := newCheckerTestApp(t)

	var rules []symptomRuleView
	decodeJSON(t, getPage(t, app, "/api/symptoms", nil), &rules)

	if len(rules) != 14 {
		t.Fatalf("expected 14 symptom rules, got %d", len(rules))
	}
	stomach := rules[8]
	if stomach.CheckboxID != "inlineCheckbox10" || stomach.OutputID != "symptom8" || stomach.HintID != "br8" {
		t.Fatalf("unexpected stomach pain rule %+v", stomach)
	}
	if stomach.Sentence != "Based on your stomach pain, we recommend Gastroenterology." {
		t.Fatalf("unexpected stomach pain sentence %q", stomach.Sentence)
	}
}

func TestPostRecommendationsEvaluatesSymptoms(t *testing.T) {
	app := newCheckerTestApp(t)

	payload := `{"specialty_index":7,"symptoms":["inlineCheckbox9","inlineCheckbox11","inlineCheckbox4"]}`
	request := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("recommendations request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var result recommendationResponse
	decodeJSON(t, response, &result)

	if result.Specialty != "Ophthalmology" {
		t.Fatalf("expected specialty Ophthalmology, got %q", result.Specialty)
	}
	if !result.ResultsShown {
		t.Fatal("expected results to be shown")
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(result.Recommendations))
	}
	if result.Recommendations[0].OutputID != "symptom7" || result.Recommendations[1].OutputID != "symptom9" {
		t.Fatalf("unexpected recommendation order %+v", result.Recommendations)
	}
	if len(result.RecommendedSpecialties) != 1 || result.RecommendedSpecialties[0] != "Neurology" {
		t.Fatalf("expected Neurology only, got %v", result.RecommendedSpecialties)
	}
}

func TestPostRecommendationsRejectsMalformedBody(t *testing.T) {
	app := newCheckerTestApp(t)

	request := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(`{"symptoms":`))
	request.Header.Set("Content-Type", "application/json")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("recommendations request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestGetOfficesFiltersBySpecialty(t *testing.T) {
	app := newCheckerTestApp(t)

	var offices []officeView
	decodeJSON(t, getPage(t, app, "/api/offices?specialty=podiatry", nil), &offices)

	if len(offices) != 1 || offices[0].Name != "Eastview" {
		t.Fatalf("expected only Eastview for podiatry, got %+v", offices)
	}
	names := make([]string, 0, len(offices[0].Doctors))
	for _, doctor := range offices[0].Doctors {
		names = append(names, doctor.Name)
	}
	if strings.Join(names, ",") != "Dr. Phil McGraw,Dr. Eduardo Gonzalez" {
		t.Fatalf("unexpected podiatry doctors %v", names)
	}
}

func TestGetOfficesWithoutSpecialtyListsAll(t *testing.T) {
	app := newCheckerTestApp(t)

	var offices []officeView
	decodeJSON(t, getPage(t, app, "/api/offices", nil), &offices)

	if len(offices) != 4 {
		t.Fatalf("expected 4 offices, got %d", len(offices))
	}
	if offices[1].Name != "Eastview" || len(offices[1].Doctors) != 4 {
		t.Fatalf("unexpected Eastview office %+v", offices[1])
	}
}

func TestGetOfficesRejectsUnknownSpecialty(t *testing.T) {
	app := newCheckerTestApp(t)

	response := getPage(t, app, "/api/offices?specialty=astrology", nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestGetOfficeReturnsOfficeWithDoctors(t *testing.T) {
	app := newCheckerTestApp(t)

	var office officeView
	decodeJSON(t, getPage(t, app, "/api/offices/3", nil), &office)

	if office.Name != "Southtown" || office.Manager != "Clair" {
		t.Fatalf("unexpected office %+v", office)
	}
	if len(office.Doctors) != 2 || office.Doctors[0].Name != "Dr. Aisha Amari" || office.Doctors[1].Name != "Dr. Deborah Barlowe" {
		t.Fatalf("unexpected Southtown doctors %+v", office.Doctors)
	}
}

func TestGetOfficeRejectsUnknownAndMalformedIDs(t *testing.T) {
	app := newCheckerTestApp(t)

	cases := map[string]int{
		"/api/offices/99":  http.StatusNotFound,
		"/api/offices/abc": http.StatusBadRequest,
		"/api/offices/0":   http.StatusBadRequest,
	}
	for path, expected := range cases {
		response := getPage(t, app, path, nil)
		response.Body.Close()
		if response.StatusCode != expected {
			t.Fatalf("GET %s: expected status %d, got %d", path, expected, response.StatusCode)
		}
	}
}

func TestGetDoctorsFiltersBySpecialty(t *testing.T) {
	app := newCheckerTestApp(t)

	var doctors []doctorView
	decodeJSON(t, getPage(t, app, "/api/doctors?specialty=neurology", nil), &doctors)

	names := make([]string, 0, len(doctors))
	for _, doctor := range doctors {
		names = append(names, doctor.Name)
	}
	if strings.Join(names, ",") != "Dr. Janet Whitlock,Dr. Gustavo Fring,Dr. Aisha Amari" {
		t.Fatalf("unexpected neurology doctors %v", names)
	}
}

func TestGetDoctorsRequiresKnownSpecialty(t *testing.T) {
	app := newCheckerTestApp(t)

	for _, path := range []string{"/api/doctors", "/api/doctors?specialty=astrology"} {
		response := getPage(t, app, path, nil)
		response.Body.Close()
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("GET %s: expected status 400, got %d", path, response.StatusCode)
		}
	}
}
