package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangEN = "en"
	LangES = "es"
)

// Manager holds flat key/value message catalogues loaded from
// <localesDir>/<lang>.json. Messages for a language fall back to the default
// language key by key.
type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
	matcher         language.Matcher
}

func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := os.ReadDir(localesDir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		lang := strings.TrimSuffix(strings.ToLower(entry.Name()), filepath.Ext(entry.Name()))
		content, err := os.ReadFile(filepath.Join(localesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", lang)
		}

		manager.locales[lang] = messages
		manager.supported = append(manager.supported, lang)
	}

	if _, ok := manager.locales[LangEN]; !ok {
		return nil, fmt.Errorf("required locale %q missing", LangEN)
	}

	sort.Strings(manager.supported)
	// The matcher falls back to its first tag, so English leads.
	tags := []language.Tag{language.English}
	for _, lang := range manager.supported {
		if lang == LangEN {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %s: %w", lang, err)
		}
		tags = append(tags, tag)
	}
	manager.matcher = language.NewMatcher(tags)

	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	normalized := normalizeLanguageTag(raw)
	if manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the best supported language for an
// Accept-Language header; headers with no supported match use the default.
func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return manager.defaultLanguage
	}

	matched, _, confidence := manager.matcher.Match(tags...)
	if confidence == language.No {
		return manager.defaultLanguage
	}
	base, _ := matched.Base()
	if normalized := normalizeLanguageTag(base.String()); manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

func (manager *Manager) Messages(lang string) map[string]string {
	defaultMessages := manager.locales[manager.defaultLanguage]
	targetMessages := manager.locales[manager.NormalizeLanguage(lang)]

	result := make(map[string]string, len(defaultMessages)+len(targetMessages))
	for key, value := range defaultMessages {
		result[key] = value
	}
	for key, value := range targetMessages {
		result[key] = value
	}
	return result
}

func (manager *Manager) isSupported(lang string) bool {
	if lang == "" {
		return false
	}
	_, ok := manager.locales[lang]
	return ok
}

func normalizeLanguageTag(raw string) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if lang == "" {
		return ""
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if separator := strings.Index(lang, "-"); separator >= 0 {
		lang = lang[:separator]
	}
	return lang
}
