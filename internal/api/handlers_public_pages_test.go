package api

import (
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"
)

var spanishLanguageLinkPattern = regexp.MustCompile(`href="(/lang/es[^"]*)"`)

func TestHealthReportsOK(t *testing.T) {
	app := newCheckerTestApp(t)

	response := getPage(t, app, "/healthz", nil)
	body := readBody(t, response)
	if response.StatusCode != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("unexpected health response %d %q", response.StatusCode, body)
	}
}

func TestSetLanguageStoresCookieAndRedirects(t *testing.T) {
	app := newCheckerTestApp(t)

	response := getPage(t, app, "/lang/es?next=/index", nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/index" {
		t.Fatalf("expected redirect to /index, got %q", location)
	}
	cookie := responseCookie(response.Cookies(), languageCookieName)
	if cookie == nil || cookie.Value != "es" {
		t.Fatalf("expected language cookie es, got %+v", cookie)
	}
}

func TestSetLanguageRejectsExternalRedirect(t *testing.T) {
	app := newCheckerTestApp(t)

	response := getPage(t, app, "/lang/en?next=//evil.example", nil)
	defer response.Body.Close()
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected redirect to /, got %q", location)
	}
}

func TestCheckerRendersSpanishLabels(t *testing.T) {
	app := newCheckerTestApp(t)

	body := readBody(t, getPage(t, app, "/", map[string]string{"Cookie": languageCookieName + "=es"}))
	if !strings.Contains(body, `<html lang="es">`) {
		t.Fatal("expected Spanish page language")
	}
}

func TestNotFoundRendersPageOrJSON(t *testing.T) {
	app := newCheckerTestApp(t)

	pageResponse := getPage(t, app, "/missing", nil)
	pageBody := readBody(t, pageResponse)
	if pageResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", pageResponse.StatusCode)
	}
	if !strings.Contains(pageBody, "Page not found") {
		t.Fatal("expected not found page")
	}

	apiResponse := getPage(t, app, "/api/missing", nil)
	apiBody := readBody(t, apiResponse)
	if apiResponse.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiResponse.StatusCode)
	}
	if !strings.Contains(apiBody, `"error":"not found"`) {
		t.Fatalf("expected JSON not found error, got %q", apiBody)
	}
}

func TestLanguageLinkAfterEvaluationReturnsToChecker(t *testing.T) {
	app := newCheckerTestApp(t)

	evaluated := readBody(t, postForm(t, app, "/symptoms", url.Values{"inlineCheckbox2": {"on"}}, nil))
	match := spanishLanguageLinkPattern.FindStringSubmatch(evaluated)
	if match == nil {
		t.Fatal("expected a Spanish language link on the evaluated page")
	}
	link := html.UnescapeString(match[1])

	switchResponse := getPage(t, app, link, nil)
	switchResponse.Body.Close()
	if switchResponse.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected language switch to redirect, got %d", switchResponse.StatusCode)
	}
	target := switchResponse.Header.Get("Location")
	if target != "/" {
		t.Fatalf("expected language switch from a form post to return to /, got %q", target)
	}

	landing := getPage(t, app, target, map[string]string{"Cookie": languageCookieName + "=es"})
	body := readBody(t, landing)
	if landing.StatusCode != http.StatusOK || !strings.Contains(body, `id="selectForm00"`) {
		t.Fatalf("expected checker page after language switch, got status %d", landing.StatusCode)
	}
}

func TestLanguageLinkOnGetPageKeepsPath(t *testing.T) {
	app := newCheckerTestApp(t)

	body := readBody(t, getPage(t, app, "/index", nil))
	match := spanishLanguageLinkPattern.FindStringSubmatch(body)
	if match == nil {
		t.Fatal("expected a Spanish language link")
	}
	if link := html.UnescapeString(match[1]); link != "/lang/es?next=%2Findex" {
		t.Fatalf("expected link back to /index, got %q", link)
	}
}
